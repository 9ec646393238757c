package dateonly

import (
	"bytes"
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates (no time component).
const Layout = "2006-01-02"

// Date is a calendar date that marshals to/from "YYYY-MM-DD" JSON strings.
// The zero value means "absent" and marshals to null. Unmarshalling treats
// null and the empty string the same as an omitted field, so callers that
// must distinguish "not provided" from "provided badly" only see a parse
// error for non-empty malformed input.
type Date struct {
	time.Time
}

// FromTime truncates t to its UTC calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	d.Time = t
	return nil
}
