package notify

import (
	"testing"
	"time"
)

func TestCenter_InsertionOrder(t *testing.T) {
	c := NewCenter(time.Minute)
	c.Success("uno")
	c.Error("dos")
	c.Success("tres")

	active := c.Active()
	if len(active) != 3 {
		t.Fatalf("expected 3 active, got %d", len(active))
	}
	if active[0].Message != "uno" || active[1].Message != "dos" || active[2].Message != "tres" {
		t.Fatalf("order broken: %+v", active)
	}
	if active[1].Kind != KindError {
		t.Fatalf("kind = %q", active[1].Kind)
	}
}

func TestCenter_AutoExpiry(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)
	c.Success("fugaz")

	if len(c.Active()) != 1 {
		t.Fatal("notification should be active immediately")
	}

	deadline := time.Now().Add(time.Second)
	for len(c.Active()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
