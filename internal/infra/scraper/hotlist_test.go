package scraper_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/infra/scraper"
	"newtab-feed/internal/usecase/fetch"

	"github.com/google/go-cmp/cmp"
)

const weiboPage = `<!DOCTYPE html>
<html><body>
<div id="pl_top_realtimehot">
  <table><tbody>
    <tr>
      <td class="td-01"><i class="icon-top"></i></td>
      <td class="td-02"><a href="/weibo?q=pinned">置顶话题</a></td>
    </tr>
    <tr>
      <td class="td-01 ranktop">1</td>
      <td class="td-02"><a href="/weibo?q=%23first%23">第一条</a><span> 2345678</span></td>
    </tr>
    <tr>
      <td class="td-01 ranktop">2</td>
      <td class="td-02"><a href="https://s.weibo.com/weibo?q=second">第二条</a><span>1234</span></td>
    </tr>
    <tr>
      <td class="td-01 ranktop">3</td>
      <td class="td-02"><a href="/weibo?q=empty"> </a><span>1</span></td>
    </tr>
  </tbody></table>
</div>
</body></html>`

func TestParseHotList_Weibo(t *testing.T) {
	items, err := scraper.ParseHotList([]byte(weiboPage), scraper.WeiboHotList)
	if err != nil {
		t.Fatalf("ParseHotList() error = %v", err)
	}

	want := []entity.HotTopic{
		{Title: "第一条", URL: "https://s.weibo.com/weibo?q=%23first%23", Hot: "2345678", Index: 1},
		{Title: "第二条", URL: "https://s.weibo.com/weibo?q=second", Hot: "1234", Index: 2},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("ParseHotList() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHotList_NoRankSelector(t *testing.T) {
	page := `<ul><li><a href="/a">A</a></li><li><a href="b">B</a></li></ul>`
	cfg := scraper.HotListConfig{
		ItemSelector:  "li",
		TitleSelector: "a",
		LinkSelector:  "a",
		URLPrefix:     "https://example.com/",
	}

	items, err := scraper.ParseHotList([]byte(page), cfg)
	if err != nil {
		t.Fatalf("ParseHotList() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].URL != "https://example.com/a" || items[1].URL != "https://example.com/b" {
		t.Errorf("urls = %q, %q", items[0].URL, items[1].URL)
	}
}

func TestHotListScraper_Fetch(t *testing.T) {
	server := httptest.NewServer(serve(weiboPage, "text/html"))
	defer server.Close()

	s := scraper.NewHotListScraper(httpGetter{client: server.Client()}, scraper.WeiboHotList, 1)
	items, err := s.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 1 || items[0].Title != "第一条" {
		t.Errorf("items = %+v", items)
	}
}

func TestHotListScraper_Fetch_NoRows(t *testing.T) {
	server := httptest.NewServer(serve("<html><body>login required</body></html>", "text/html"))
	defer server.Close()

	s := scraper.NewHotListScraper(httpGetter{client: server.Client()}, scraper.WeiboHotList, 5)
	_, err := s.Fetch(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}
