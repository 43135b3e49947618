package core

import (
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned empty ID")
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestParseVariableName(t *testing.T) {
	if _, err := ParseVariableName("  "); err == nil {
		t.Error("Expected error for blank variable name")
	}
	v, err := ParseVariableName("Y")
	if err != nil {
		t.Fatalf("ParseVariableName failed: %v", err)
	}
	if v.String() != "Y" {
		t.Errorf("Expected Y, got %s", v)
	}
}

func TestHashFields_Deterministic(t *testing.T) {
	a := HashFields(map[string]string{"seed": "42", "n": "1000"})
	b := HashFields(map[string]string{"n": "1000", "seed": "42"})
	if !a.Equals(b) {
		t.Error("HashFields should be order independent")
	}

	c := HashFields(map[string]string{"seed": "43", "n": "1000"})
	if a.Equals(c) {
		t.Error("Different fields should hash differently")
	}
}

func TestNewHash(t *testing.T) {
	h := NewHash([]byte("hello"))
	if h.IsEmpty() {
		t.Error("Expected non-empty hash")
	}
	if len(h.String()) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h.String()))
	}
}
