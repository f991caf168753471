package provider

import (
	"encoding/json"
	"strings"
)

// ParseBing extracts the image URL from the Bing daily wallpaper mirror.
func ParseBing(raw []byte) (string, bool) {
	var d struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return "", false
	}
	u := strings.TrimSpace(d.URL)
	return u, strings.HasPrefix(u, "http")
}
