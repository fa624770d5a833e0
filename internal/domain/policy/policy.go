// Package policy decides who may act on whose account.
//
// Every function is pure and total: it performs no I/O, never panics and
// reports a denial through a Decision carrying a reason code instead of an
// error. Callers translate reasons into transport responses.
package policy

import (
	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
)

// Reason explains why a decision denied an action.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotAuthenticated Reason = "NOT_AUTHENTICATED"
	ReasonRoleEscalation   Reason = "FORBIDDEN_ROLE_ESCALATION"
	ReasonTargetRole       Reason = "FORBIDDEN_TARGET_ROLE"
	ReasonSelfOnly         Reason = "FORBIDDEN_SELF_ONLY"
)

// String returns the reason code.
func (r Reason) String() string {
	return string(r)
}

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Field identifies an account attribute that an edit may change.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldEmail
	FieldUsername
	FieldBio
	FieldAvatar
	FieldRole
	FieldStatus
)

// FieldSet is a set of editable fields.
type FieldSet uint8

// Fields builds a FieldSet.
func Fields(fields ...Field) FieldSet {
	var set FieldSet
	for _, f := range fields {
		set |= FieldSet(f)
	}

	return set
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return s&FieldSet(f) != 0
}

// Without returns the set minus the given fields.
func (s FieldSet) Without(fields ...Field) FieldSet {
	return s &^ Fields(fields...)
}

var (
	// SelfFields may be changed by any account on itself.
	SelfFields = Fields(FieldName, FieldEmail, FieldUsername, FieldBio, FieldAvatar)
	// AdminFields may be changed by an ADMIN on a USER account.
	AdminFields = Fields(FieldName, FieldEmail, FieldUsername)
	// FounderFields may be changed by a FOUNDER on a USER or ADMIN account.
	FounderFields = Fields(FieldName, FieldEmail, FieldUsername, FieldRole, FieldStatus)
)

// EditDecision is a Decision plus the fields the actor may change.
// Fields is empty when the edit is denied.
type EditDecision struct {
	Decision
	Fields FieldSet
}

// CanEditUser decides whether actor may edit target.
//
// Self-edits are always allowed but never include role or status. An ADMIN
// may edit USER accounts without touching role or status. A FOUNDER may edit
// USER and ADMIN accounts with the full field set, and among FOUNDERs only
// themself.
func CanEditUser(actor, target *entity.Actor) EditDecision {
	if !authenticated(actor) {
		return EditDecision{Decision: deny(ReasonNotAuthenticated)}
	}
	if target == nil || !target.Role.IsValid() {
		return EditDecision{Decision: deny(ReasonTargetRole)}
	}

	if actor.ID == target.ID {
		return EditDecision{Decision: allow(), Fields: SelfFields}
	}

	switch actor.Role {
	case entity.RoleUser:
		return EditDecision{Decision: deny(ReasonSelfOnly)}
	case entity.RoleAdmin:
		if target.Role != entity.RoleUser {
			return EditDecision{Decision: deny(ReasonTargetRole)}
		}

		return EditDecision{Decision: allow(), Fields: AdminFields}
	case entity.RoleFounder:
		if target.Role == entity.RoleFounder {
			return EditDecision{Decision: deny(ReasonTargetRole)}
		}

		return EditDecision{Decision: allow(), Fields: FounderFields}
	default:
		return EditDecision{Decision: deny(ReasonNotAuthenticated)}
	}
}

// CheckEditFields verifies that every requested field is permitted by an
// edit decision. Requesting a field outside the permitted set is an attempt
// to escalate privileges.
func CheckEditFields(edit EditDecision, requested FieldSet) Decision {
	if !edit.Allowed {
		return edit.Decision
	}
	if requested&^edit.Fields != 0 {
		return deny(ReasonRoleEscalation)
	}

	return allow()
}

// CanDeleteUser decides whether actor may delete target through the
// user-management path. FOUNDER accounts are never deletable here and ADMIN
// accounts only by a FOUNDER.
func CanDeleteUser(actor, target *entity.Actor) Decision {
	if !authenticated(actor) {
		return deny(ReasonNotAuthenticated)
	}
	if target == nil || !target.Role.IsValid() {
		return deny(ReasonTargetRole)
	}

	switch target.Role {
	case entity.RoleFounder:
		return deny(ReasonTargetRole)
	case entity.RoleAdmin:
		if actor.Role != entity.RoleFounder {
			return deny(ReasonTargetRole)
		}
	case entity.RoleUser:
	}

	switch actor.Role {
	case entity.RoleAdmin, entity.RoleFounder:
		return allow()
	case entity.RoleUser:
		return deny(ReasonSelfOnly)
	default:
		return deny(ReasonNotAuthenticated)
	}
}

// CanListUsers decides whether actor may see the list of all accounts.
func CanListUsers(actor *entity.Actor) Decision {
	if !authenticated(actor) {
		return deny(ReasonNotAuthenticated)
	}

	switch actor.Role {
	case entity.RoleAdmin, entity.RoleFounder:
		return allow()
	case entity.RoleUser:
		return deny(ReasonSelfOnly)
	default:
		return deny(ReasonNotAuthenticated)
	}
}

// RequireActiveSession denies anonymous actors and accounts that are not ACTIVE.
func RequireActiveSession(actor *entity.Actor) Decision {
	if !authenticated(actor) || actor.Status != entity.StatusActive {
		return deny(ReasonNotAuthenticated)
	}

	return allow()
}

// authenticated rejects anonymous actors and descriptors carrying an unknown role.
func authenticated(actor *entity.Actor) bool {
	return actor != nil && actor.ID != uuid.Nil && actor.Role.IsValid()
}
