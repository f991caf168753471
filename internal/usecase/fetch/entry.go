package fetch

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is the cached envelope stored under a kind's key.
// FetchedAt is unix milliseconds; DateKey is the calendar date, in the
// clock's location, on which the entry was written.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt int64           `json:"fetched_at"`
	DateKey   string          `json:"date_key"`
}

// FetchedTime returns FetchedAt as a time.Time.
func (e Entry) FetchedTime() time.Time {
	return time.UnixMilli(e.FetchedAt)
}

func encodeEntry(value any, fetchedAt time.Time, dateKey string) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return json.Marshal(Entry{Value: raw, FetchedAt: fetchedAt.UnixMilli(), DateKey: dateKey})
}

func decodeEntry(data []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("unmarshal entry: %w", err)
	}
	if len(e.Value) == 0 || string(e.Value) == "null" {
		return Entry{}, fmt.Errorf("unmarshal entry: empty value")
	}
	return e, nil
}
