package notify

import (
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func TestDeduperSeen(t *testing.T) {
	mockClock := clock.NewMock()
	d := newDeduper(mockClock, time.Hour)

	if d.Seen("a") {
		t.Errorf("a fresh key should not be seen")
	}
	if !d.Seen("a") {
		t.Errorf("a repeated key should be seen")
	}
	if d.Seen("b") {
		t.Errorf("a different key should not be seen")
	}
}

func TestDeduperExpires(t *testing.T) {
	mockClock := clock.NewMock()
	d := newDeduper(mockClock, time.Hour)

	d.Seen("a")

	mockClock.Add(30 * time.Minute)
	if !d.Seen("a") {
		t.Errorf("the key should still be remembered inside the window")
	}

	mockClock.Add(2 * time.Hour)
	if d.Seen("a") {
		t.Errorf("the key should have expired")
	}
}
