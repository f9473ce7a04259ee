package testutil

import (
	"testing"
	"time"

	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
)

// NewTestClock returns a Clock in the default back-office timezone.
func NewTestClock(t *testing.T) *timeutil.Clock {
	t.Helper()
	clock, err := timeutil.NewClock(timeutil.DefaultTimezone)
	if err != nil {
		t.Fatalf("failed to create test clock: %v", err)
	}
	return clock
}

// TS parses a dd/mm/yyyy HH:MM:SS timestamp with the given clock, failing the
// test on malformed input.
func TS(t *testing.T, clock *timeutil.Clock, s string) time.Time {
	t.Helper()
	ts, err := clock.Parse(s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}
