package ratelimit

import "testing"

func TestAllowConsumesTokens(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("conn1", 3, 0) {
			t.Fatalf("expected token %d to be granted", i)
		}
	}
	if l.Allow("conn1", 3, 0) {
		t.Fatalf("expected bucket to be empty")
	}
}

func TestAllowIsolatesKeys(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatalf("expected first token for a")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("expected a exhausted")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("expected b unaffected by a")
	}
}

func TestForget(t *testing.T) {
	l := New()
	if !l.Allow("c", 1, 0) {
		t.Fatalf("expected token")
	}
	l.Forget("c")
	if !l.Allow("c", 1, 0) {
		t.Fatalf("expected fresh bucket after forget")
	}
}
