package core

import "testing"

func TestHashOf_Deterministic(t *testing.T) {
	payload := map[string]interface{}{
		"scenario": "randomized",
		"seed":     int64(42),
		"n":        10000,
	}
	a, err := HashOf(payload)
	if err != nil {
		t.Fatalf("HashOf failed: %v", err)
	}
	b, err := HashOf(payload)
	if err != nil {
		t.Fatalf("HashOf failed: %v", err)
	}
	if !a.Equals(b) {
		t.Errorf("Same payload hashed to %s and %s", a, b)
	}

	payload["seed"] = int64(43)
	c, err := HashOf(payload)
	if err != nil {
		t.Fatalf("HashOf failed: %v", err)
	}
	if a.Equals(c) {
		t.Error("Different seeds produced identical hashes")
	}
}

func TestHashOf_UnencodablePayload(t *testing.T) {
	if _, err := HashOf(func() {}); err == nil {
		t.Error("Expected error for unencodable payload")
	}
}
