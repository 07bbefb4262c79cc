package models

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ChamberTimeEntry is one weekday of a doctor's chamber time, e.g.
// {"Monday", ["9:00 AM - 12:00 PM"]}.
type ChamberTimeEntry struct {
	Weekday string
	Times   []string
}

// DoctorAvailability keeps the weekday order the backend sent, which is also
// the order used when every weekday's chamber times are listed together.
type DoctorAvailability []ChamberTimeEntry

// Lookup returns the times of weekday, or nil when the weekday is absent.
func (a DoctorAvailability) Lookup(weekday string) []string {
	for _, entry := range a {
		if entry.Weekday == weekday {
			return entry.Times
		}
	}
	return nil
}

func (a DoctorAvailability) Weekdays() []string {
	weekdays := make([]string, 0, len(a))
	for _, entry := range a {
		weekdays = append(weekdays, entry.Weekday)
	}
	return weekdays
}

// UnmarshalJSON decodes a JSON object of weekday -> time labels in key order.
// Malformed input leaves an empty availability instead of failing the whole
// doctor payload; a repeated weekday keeps its first position and the last value.
func (a *DoctorAvailability) UnmarshalJSON(data []byte) error {
	*a = DoctorAvailability{}

	if !gjson.ValidBytes(data) {
		return nil
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil
	}

	entries := DoctorAvailability{}
	positions := make(map[string]int)
	parsed.ForEach(func(key, value gjson.Result) bool {
		times, ok := timeLabels(value)
		if !ok {
			return true
		}

		weekday := key.String()
		if idx, seen := positions[weekday]; seen {
			entries[idx].Times = times
			return true
		}
		positions[weekday] = len(entries)
		entries = append(entries, ChamberTimeEntry{Weekday: weekday, Times: times})
		return true
	})

	*a = entries
	return nil
}

// timeLabels accepts null or an array of strings.
func timeLabels(value gjson.Result) ([]string, bool) {
	if value.Type == gjson.Null {
		return nil, true
	}
	if !value.IsArray() {
		return nil, false
	}

	items := value.Array()
	times := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			return nil, false
		}
		times = append(times, item.String())
	}
	return times, true
}

func (a DoctorAvailability) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Weekday)
		if err != nil {
			return nil, err
		}
		times := entry.Times
		if times == nil {
			times = []string{}
		}
		value, err := json.Marshal(times)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
