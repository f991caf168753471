package provider

import (
	"encoding/json"
	"strings"

	"newtab-feed/internal/domain/entity"
)

// flexString accepts a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// ParseVvhan parses an api.vvhan.com hot list. The payload must report
// success and carry at least one entry.
func ParseVvhan(raw []byte) ([]entity.HotTopic, bool) {
	var d struct {
		Success bool `json:"success"`
		Data    []struct {
			Title string     `json:"title"`
			URL   string     `json:"url"`
			Hot   flexString `json:"hot"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &d); err != nil || !d.Success || len(d.Data) == 0 {
		return nil, false
	}
	items := make([]entity.HotTopic, 0, len(d.Data))
	for _, it := range d.Data {
		items = append(items, entity.HotTopic{
			Title: strings.TrimSpace(it.Title),
			URL:   it.URL,
			Hot:   string(it.Hot),
		})
	}
	return entity.Rank(items, entity.HotTopicLimit), true
}
