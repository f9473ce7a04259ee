package timeutil

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed sheet timestamp format (dd/mm/yyyy HH:MM:SS).
const TimestampLayout = "02/01/2006 15:04:05"

// DefaultTimezone is where the back office operates unless configured
// otherwise.
const DefaultTimezone = "America/Argentina/Buenos_Aires"

// Clock formats and parses sheet timestamps in one fixed timezone. All
// timestamps written to the row store go through a Clock so the sheet stays
// consistent regardless of the host's local time.
type Clock struct {
	loc *time.Location
}

// NewClock loads the given IANA timezone name. An empty name selects
// DefaultTimezone.
func NewClock(timezone string) (*Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

// Now returns the current time in the clock's timezone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Format renders t as a sheet timestamp in the clock's timezone.
func (c *Clock) Format(t time.Time) string {
	return t.In(c.loc).Format(TimestampLayout)
}

// Parse reads a sheet timestamp in the clock's timezone.
func (c *Clock) Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// Elapsed returns the non-negative wall-clock difference between two sheet
// timestamps as HH:MM:SS. When either timestamp fails to parse it returns
// ZeroDuration and the parse error; callers log the error and carry on, since
// elapsed time is an audit metric, not a balance that must reconcile.
func (c *Clock) Elapsed(startTS, endTS string) (string, error) {
	start, err := c.Parse(startTS)
	if err != nil {
		return ZeroDuration, err
	}
	end, err := c.Parse(endTS)
	if err != nil {
		return ZeroDuration, err
	}
	secs := int(end.Sub(start).Seconds())
	if secs < 0 {
		secs = 0
	}
	return FormatDuration(secs), nil
}
