package subject

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	bhnerr "github.com/birthhealthnetwork/bhn-backend/internal/pkg/errors"
)

func TestRefValidate(t *testing.T) {
	id := uuid.New()

	if err := (Ref{}).Validate(KindPatient); err != nil {
		t.Fatalf("zero ref should validate: %v", err)
	}
	if err := (Ref{Kind: KindPatient, ID: id}).Validate(KindPatient, KindHealthRecord); err != nil {
		t.Fatalf("allowed kind rejected: %v", err)
	}

	err := (Ref{Kind: KindAppointment, ID: id}).Validate(KindPatient, KindHealthRecord)
	if !errors.Is(err, bhnerr.ErrInvalidArgument) {
		t.Fatalf("disallowed kind: got %v, want ErrInvalidArgument", err)
	}

	err = (Ref{Kind: KindPatient}).Validate(KindPatient)
	if !errors.Is(err, bhnerr.ErrInvalidArgument) {
		t.Fatalf("nil id: got %v, want ErrInvalidArgument", err)
	}
}

func TestRefColumns(t *testing.T) {
	id := uuid.New()
	kinds := []Kind{KindPatient, KindHealthRecord, KindBirthRegistration}

	cols := (Ref{Kind: KindHealthRecord, ID: id}).Columns(kinds...)
	if cols[0] != nil || cols[2] != nil {
		t.Fatal("unmatched kinds must stay nil")
	}
	if cols[1] == nil || *cols[1] != id {
		t.Fatalf("matched column = %v, want %s", cols[1], id)
	}

	for i, c := range (Ref{}).Columns(kinds...) {
		if c != nil {
			t.Fatalf("zero ref set column %d", i)
		}
	}

	// The returned pointer is a copy; mutating it must not alias the ref.
	ref := Ref{Kind: KindPatient, ID: id}
	cols = ref.Columns(kinds...)
	*cols[0] = uuid.Nil
	if ref.ID != id {
		t.Fatal("Columns leaked a pointer into the ref")
	}
}
