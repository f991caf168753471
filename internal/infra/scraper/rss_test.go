package scraper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/infra/scraper"
	"newtab-feed/internal/usecase/fetch"

	"github.com/google/go-cmp/cmp"
)

const hnFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Hacker News: Front Page</title>
    <link>https://news.ycombinator.com/</link>
    <item>
      <title>Show HN: A tiny database</title>
      <link>https://example.com/db</link>
      <description><![CDATA[<p>Points: 312</p><p># Comments: 80</p>]]></description>
    </item>
    <item>
      <title>Untitled link</title>
      <link></link>
    </item>
    <item>
      <title>Why Go</title>
      <link>https://example.com/go</link>
      <description>no score here</description>
    </item>
    <item>
      <title>Third</title>
      <link>https://example.com/3</link>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	items, err := scraper.ParseFeed([]byte(hnFeed))
	if err != nil {
		t.Fatalf("ParseFeed() error = %v", err)
	}

	want := []entity.HotTopic{
		{Title: "Show HN: A tiny database", URL: "https://example.com/db", Hot: "312", Index: 1},
		{Title: "Why Go", URL: "https://example.com/go", Index: 2},
		{Title: "Third", URL: "https://example.com/3", Index: 3},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("ParseFeed() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFeed_Atom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <updated>2024-01-01T00:00:00Z</updated>
  <entry>
    <title>Atom Article 1</title>
    <link href="https://example.com/atom1"/>
    <id>1</id>
    <updated>2024-01-01T00:00:00Z</updated>
  </entry>
</feed>`

	items, err := scraper.ParseFeed([]byte(atom))
	if err != nil {
		t.Fatalf("ParseFeed() error = %v", err)
	}
	if len(items) != 1 || items[0].URL != "https://example.com/atom1" {
		t.Errorf("items = %+v", items)
	}
}

func TestParseFeed_Invalid(t *testing.T) {
	_, err := scraper.ParseFeed([]byte("<html>not a feed"))
	if !errors.Is(err, fetch.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestFeedReader_Fetch(t *testing.T) {
	server := httptest.NewServer(serve(hnFeed, "application/rss+xml"))
	defer server.Close()

	reader := scraper.NewFeedReader(httpGetter{client: server.Client()}, 2)
	items, err := reader.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[1].Index != 2 {
		t.Errorf("items[1].Index = %d, want 2", items[1].Index)
	}
}

func TestFeedReader_Fetch_EmptyFeed(t *testing.T) {
	empty := `<?xml version="1.0"?><rss version="2.0"><channel><title>x</title></channel></rss>`
	server := httptest.NewServer(serve(empty, "application/rss+xml"))
	defer server.Close()

	reader := scraper.NewFeedReader(httpGetter{client: server.Client()}, 5)
	_, err := reader.Fetch(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestFeedReader_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	reader := scraper.NewFeedReader(httpGetter{client: server.Client()}, 5)
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
}
