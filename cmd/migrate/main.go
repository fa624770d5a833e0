package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"linkforge/config"
	"linkforge/internal/domain/entity"
	"linkforge/internal/infra/persistence/migrations"
	"linkforge/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    revert every applied migration
// - promote: grant ADMIN or FOUNDER to an existing account

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downConfirm := downCmd.Bool("yes", false, "Confirm dropping every table")
	promoteCmd := flag.NewFlagSet("promote", flag.ExitOnError)
	promoteEmail := promoteCmd.String("email", "", "Email of the account to promote")
	promoteRole := promoteCmd.String("role", string(entity.RoleFounder), "Role to grant: FOUNDER or ADMIN")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = run(withSQL(migrations.Up))
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		if !*downConfirm {
			fmt.Fprintln(os.Stderr, "down drops every table, pass -yes to confirm")
			os.Exit(1)
		}
		err = run(withSQL(migrations.Down))
	case "promote":
		_ = promoteCmd.Parse(os.Args[2:])
		role := entity.Role(strings.ToUpper(strings.TrimSpace(*promoteRole)))
		err = run(func(cfg *config.Config, db *gorm.DB) error {
			user, err := promote(context.Background(), postgres.NewTransactionManager(db, cfg), *promoteEmail, role)
			if err != nil {
				return err
			}
			slog.Info("Account promoted", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

			return nil
		})
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		slog.Error("Command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Command finished", slog.String("command", os.Args[1]))
}

func run(step func(*config.Config, *gorm.DB) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres is not configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return step(cfg, db)
}

// withSQL adapts a migration step to run.
func withSQL(step func(*sql.DB) error) func(*config.Config, *gorm.DB) error {
	return func(_ *config.Config, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}

		return step(sqlDB)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up         Apply pending migrations")
	fmt.Println("  down -yes  Revert every migration")
	fmt.Println("  promote -email <email> [-role FOUNDER|ADMIN]")
	fmt.Println("             Grant a staff role to an existing account")
}
