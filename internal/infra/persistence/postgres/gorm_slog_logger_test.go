package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"linkforge/config"
	deliverycontext "linkforge/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gormLogger := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	gormLogger.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	gormLogger.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	gormLogger.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	gormLogger.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	gormLogger.LogMode(logger.Info).Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_TraceTagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	gormLogger := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 0 }

	gormLogger.Trace(deliverycontext.WithRequestID(context.Background(), "req-42"), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "request_id=req-42")
	buf.Reset()

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.NotContains(t, buf.String(), "request_id")
}
