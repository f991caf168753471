// Package scraper turns RSS/Atom feeds and HTML hot lists into ranked
// hot-topic entries.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"

	"github.com/mmcdole/gofeed"
)

// pointsPattern matches the score line hnrss.org puts into item descriptions.
var pointsPattern = regexp.MustCompile(`Points:\s*(\d+)`)

// FeedReader reads a feed through a Getter and maps its items to hot topics.
type FeedReader struct {
	client fetch.Getter
	limit  int
}

// NewFeedReader creates a FeedReader keeping at most limit items (0 = all).
func NewFeedReader(client fetch.Getter, limit int) *FeedReader {
	return &FeedReader{client: client, limit: limit}
}

// Fetch downloads and parses the feed at feedURL.
// A feed without usable items is reported as an invalid response.
func (r *FeedReader) Fetch(ctx context.Context, feedURL string) ([]entity.HotTopic, error) {
	raw, err := r.client.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	items, err := ParseFeed(raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("feed %s: no items: %w", feedURL, fetch.ErrInvalidResponse)
	}
	return entity.Rank(items, r.limit), nil
}

// ParseFeed parses an RSS or Atom document.
// Items without a title or link are skipped. Hot carries the score when the
// description exposes one.
func ParseFeed(raw []byte) ([]entity.HotTopic, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w: %w", fetch.ErrInvalidResponse, err)
	}

	items := make([]entity.HotTopic, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		hot := ""
		if m := pointsPattern.FindStringSubmatch(it.Description); m != nil {
			hot = m[1]
		}
		items = append(items, entity.HotTopic{Title: title, URL: link, Hot: hot})
	}
	return entity.Rank(items, 0), nil
}
