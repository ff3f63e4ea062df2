package model

import (
	"strings"
	"time"
)

// DateLayout accepts dates with or without zero padding (2025-04-04 and 2025-04-4).
const DateLayout = "2006-1-2"

// Date is a calendar date with no time of day, anchored at local midnight.
//
// The raw input is retained so records render exactly as they were supplied.
// A Date that failed to parse is kept rather than rejected: it is not
// comparable with anything, so range checks against it always fail.
type Date struct {
	t     time.Time
	raw   string
	valid bool
}

// ParseDate parses s in the local time zone.
func ParseDate(s string) Date {
	raw := strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return Date{raw: raw}
	}
	return Date{t: t, raw: raw, valid: true}
}

// DateOf returns the Date at local midnight of the given calendar day.
func DateOf(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return Date{t: t, raw: t.Format("2006-01-02"), valid: true}
}

// Valid reports whether the date parsed.
func (d Date) Valid() bool {
	return d.valid
}

// Time returns the local-midnight timestamp. Zero for invalid dates.
func (d Date) Time() time.Time {
	return d.t
}

// Compare returns -1, 0 or +1 and ok=false when either side is invalid.
func (d Date) Compare(other Date) (int, bool) {
	if !d.valid || !other.valid {
		return 0, false
	}
	return d.t.Compare(other.t), true
}

// String returns the date as it was supplied.
func (d Date) String() string {
	return d.raw
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	*d = ParseDate(string(text))
	return nil
}

// BoundState describes how a filter bound was supplied.
type BoundState int

const (
	// BoundUnset leaves that side of the interval open.
	BoundUnset BoundState = iota
	// BoundValid carries a parsed date.
	BoundValid
	// BoundInvalid holds text that did not parse as a date.
	BoundInvalid
)

// Bound is an optional, inclusive end of a date interval.
type Bound struct {
	date  Date
	state BoundState
}

// ParseBound interprets raw control text. Blank text means unset.
func ParseBound(s string) Bound {
	if strings.TrimSpace(s) == "" {
		return Bound{}
	}
	d := ParseDate(s)
	if !d.Valid() {
		return Bound{date: d, state: BoundInvalid}
	}
	return Bound{date: d, state: BoundValid}
}

// BoundAt returns a bound set to d.
func BoundAt(d Date) Bound {
	if !d.Valid() {
		return Bound{date: d, state: BoundInvalid}
	}
	return Bound{date: d, state: BoundValid}
}

// State reports how the bound was supplied.
func (b Bound) State() BoundState {
	return b.state
}

// IsSet reports whether the bound constrains the interval.
func (b Bound) IsSet() bool {
	return b.state != BoundUnset
}

// Date returns the bound's date. Only meaningful when the state is BoundValid.
func (b Bound) Date() Date {
	return b.date
}

// String returns the raw text of the bound, or "" when unset.
func (b Bound) String() string {
	if b.state == BoundUnset {
		return ""
	}
	return b.date.String()
}
