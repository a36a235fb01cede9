package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTraceID(t *testing.T) {
	first := NewTraceID()
	second := NewTraceID()

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if first == second {
		t.Error("expected distinct trace ids")
	}
}
