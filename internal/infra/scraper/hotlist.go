package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"

	"github.com/PuerkitoBio/goquery"
)

// HotListConfig locates hot-list rows in an HTML page.
type HotListConfig struct {
	ItemSelector  string
	TitleSelector string
	LinkSelector  string
	HotSelector   string
	// RankSelector, when set, must contain a number; rows without one
	// (pinned or promoted entries) are skipped.
	RankSelector string
	URLPrefix    string
}

// WeiboHotList is the layout of s.weibo.com/top/summary.
var WeiboHotList = HotListConfig{
	ItemSelector:  "#pl_top_realtimehot table tbody tr",
	TitleSelector: "td.td-02 a",
	LinkSelector:  "td.td-02 a",
	HotSelector:   "td.td-02 span",
	RankSelector:  "td.td-01",
	URLPrefix:     "https://s.weibo.com",
}

// HotListScraper extracts a hot list from an HTML page.
type HotListScraper struct {
	client fetch.Getter
	config HotListConfig
	limit  int
}

// NewHotListScraper creates a scraper for pages laid out like config.
func NewHotListScraper(client fetch.Getter, config HotListConfig, limit int) *HotListScraper {
	return &HotListScraper{client: client, config: config, limit: limit}
}

// Fetch downloads pageURL and extracts its rows.
func (s *HotListScraper) Fetch(ctx context.Context, pageURL string) ([]entity.HotTopic, error) {
	raw, err := s.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	items, err := ParseHotList(raw, s.config)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items found with selector %q: %w", s.config.ItemSelector, fetch.ErrInvalidResponse)
	}
	return entity.Rank(items, s.limit), nil
}

// ParseHotList extracts ranked rows from an HTML document.
func ParseHotList(raw []byte, config HotListConfig) ([]entity.HotTopic, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w: %w", fetch.ErrInvalidResponse, err)
	}

	var items []entity.HotTopic
	doc.Find(config.ItemSelector).Each(func(i int, row *goquery.Selection) {
		if config.RankSelector != "" {
			if _, err := strconv.Atoi(strings.TrimSpace(row.Find(config.RankSelector).Text())); err != nil {
				return
			}
		}

		title := strings.TrimSpace(row.Find(config.TitleSelector).First().Text())
		if title == "" {
			slog.Debug("skipping hot-list row with empty title", slog.Int("index", i))
			return
		}
		href, _ := row.Find(config.LinkSelector).First().Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			slog.Debug("skipping hot-list row with empty link", slog.Int("index", i), slog.String("title", title))
			return
		}

		hot := ""
		if config.HotSelector != "" {
			hot = strings.TrimSpace(row.Find(config.HotSelector).First().Text())
		}
		items = append(items, entity.HotTopic{
			Title: title,
			URL:   makeAbsoluteURL(href, config.URLPrefix),
			Hot:   hot,
		})
	})
	return entity.Rank(items, 0), nil
}

// makeAbsoluteURL joins a relative href onto prefix.
func makeAbsoluteURL(urlStr string, prefix string) string {
	if strings.HasPrefix(urlStr, "http://") || strings.HasPrefix(urlStr, "https://") {
		return urlStr
	}
	if prefix == "" {
		return urlStr
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(urlStr, "/")
}
