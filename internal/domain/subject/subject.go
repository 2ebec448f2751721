// Package subject models the tagged reference used by documents and
// notifications. The schema stores the target as several nullable FK
// columns; a Ref makes the "at most one is set" rule checkable before the
// row is written, since no engine constraint enforces it.
package subject

import (
	"fmt"

	"github.com/google/uuid"

	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

type Kind string

const (
	KindPatient           Kind = "patient"
	KindHealthRecord      Kind = "health_record"
	KindBirthRegistration Kind = "birth_registration"
	KindAppointment       Kind = "appointment"
)

// Ref is a tagged (kind, id) pair. The zero value means "no subject".
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

func (r Ref) IsZero() bool { return r.Kind == "" && r.ID == uuid.Nil }

// Validate checks the ref against the kinds an entity accepts.
func (r Ref) Validate(allowed ...Kind) error {
	if r.IsZero() {
		return nil
	}
	if r.ID == uuid.Nil {
		return fmt.Errorf("%w: subject %s has nil id", bhnerr.ErrInvalidArgument, r.Kind)
	}
	for _, k := range allowed {
		if r.Kind == k {
			return nil
		}
	}
	return fmt.Errorf("%w: subject kind %q not allowed here", bhnerr.ErrInvalidArgument, r.Kind)
}

// Columns splits the ref into the nullable FK values for the given kinds,
// in the order the kinds are passed. Unset targets stay nil.
func (r Ref) Columns(kinds ...Kind) []*uuid.UUID {
	out := make([]*uuid.UUID, len(kinds))
	if r.IsZero() {
		return out
	}
	for i, k := range kinds {
		if r.Kind == k {
			id := r.ID
			out[i] = &id
		}
	}
	return out
}
