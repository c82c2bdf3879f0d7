package inventory

import (
	"fmt"
	"time"
)

// rfc3339Time implements sql.Scanner for required datetime columns. SQLite
// stores them as RFC3339 TEXT; PostgreSQL returns time.Time directly.
type rfc3339Time struct{ time.Time }

func (t *rfc3339Time) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into rfc3339Time", value)
	}
}

func (t *rfc3339Time) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// nullRFC3339Time is the nullable counterpart, for finished_at.
type nullRFC3339Time struct {
	Time  time.Time
	Valid bool
}

func (n *nullRFC3339Time) Scan(value any) error {
	n.Time, n.Valid = time.Time{}, false
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		n.Time, n.Valid = v, true
		return nil
	case string:
		return n.parse(v)
	case []byte:
		return n.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into nullRFC3339Time", value)
	}
}

func (n *nullRFC3339Time) parse(s string) error {
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	n.Time, n.Valid = parsed, true
	return nil
}

// Ptr returns the value as *time.Time, nil when not Valid.
func (n *nullRFC3339Time) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
