package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	if first == second {
		t.Fatalf("ids must be unique: %s", first)
	}

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("unexpected uuid version: got=%d want=7", parsed.Version())
	}
}
