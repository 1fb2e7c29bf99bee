package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the three-letter abbreviation ("Mon", "Tue", ...).
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d][:3]
}

// ParseWeekday accepts a full English day name or its three-letter
// abbreviation, in any case.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, full := range weekdayNames {
		full = strings.ToLower(full)
		if name == full || name == full[:3] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Weekday) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	w, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*d = w
	return nil
}

// Weekdays is a set of days kept ordered Monday to Sunday. It is stored as a
// Postgres text[] column.
type Weekdays []Weekday

// ParseWeekdays parses names into a de-duplicated, ordered set.
func ParseWeekdays(names []string) (Weekdays, error) {
	days := make(Weekdays, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days.normalize(), nil
}

func (w Weekdays) normalize() Weekdays {
	seen := make(map[Weekday]bool, len(w))
	out := make(Weekdays, 0, len(w))
	for _, d := range w {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the abbreviations in order.
func (w Weekdays) Strings() []string {
	out := make([]string, len(w))
	for i, d := range w {
		out[i] = d.String()
	}
	return out
}

func (w Weekdays) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Strings())
}

// Value implements the driver.Valuer interface
func (w Weekdays) Value() (driver.Value, error) {
	return pq.StringArray(w.normalize().Strings()).Value()
}

// Scan implements the sql.Scanner interface. Both the text[] literal
// ("{Mon,Wed}") and the older comma-joined form ("Mon,Wed") are accepted.
func (w *Weekdays) Scan(value interface{}) error {
	if value == nil {
		*w = Weekdays{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("failed to scan Weekdays: unsupported type %T", value)
	}

	var names []string
	if strings.HasPrefix(raw, "{") {
		var arr pq.StringArray
		if err := arr.Scan(raw); err != nil {
			return err
		}
		names = arr
	} else if strings.TrimSpace(raw) != "" {
		names = strings.Split(raw, ",")
	}

	days, err := ParseWeekdays(names)
	if err != nil {
		return err
	}
	*w = days
	return nil
}
