package tz

import (
	"fmt"
	"time"
)

// Layout is used wherever a prompt timestamp is shown to an operator.
const Layout = "2006-01-02 15:04 MST"

// Load returns the location called name; an empty name is UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// Format renders t in loc using Layout. The zero time renders as "-".
func Format(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(Layout)
}
