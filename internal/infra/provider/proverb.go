package provider

import (
	"encoding/json"
	"strings"

	"newtab-feed/internal/domain/entity"
)

const proverbCategory = "每日分享"

// ParseHitokoto parses a hitokoto.cn sentence. Empty sentences are rejected.
func ParseHitokoto(raw []byte) (entity.Proverb, bool) {
	var d struct {
		Hitokoto string  `json:"hitokoto"`
		FromWho  *string `json:"from_who"`
		From     string  `json:"from"`
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return entity.Proverb{}, false
	}
	text := strings.TrimSpace(d.Hitokoto)
	if text == "" {
		return entity.Proverb{}, false
	}
	author := ""
	if d.FromWho != nil {
		author = strings.TrimSpace(*d.FromWho)
	}
	return entity.Proverb{
		Text:     text,
		Author:   author,
		Source:   strings.TrimSpace(d.From),
		Category: proverbCategory,
	}, true
}
