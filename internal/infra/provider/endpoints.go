// Package provider holds the concrete upstream sources for every widget:
// endpoint defaults, payload parsers and the provider chains handed to the
// fetch orchestrator.
package provider

import (
	"sort"
	"time"
)

// Provider names. They double as metric labels and as keys in the
// sources override file.
const (
	NameIPAPI        = "ipapi"
	NameIPAPICom     = "ip-api"
	NameOpenMeteo    = "open-meteo"
	NameSampleMovies = "sampleapis"
	NameHitokoto     = "hitokoto"
	NameVvhanZhihu   = "vvhan-zhihu"
	NameVvhanWeibo   = "vvhan-weibo"
	NameVvhanToutiao = "vvhan-toutiao"
	NameWeiboHTML    = "weibo-html"
	NameHackerNews   = "hackernews-rss"
	NameBing         = "bing"
)

// Endpoint is where a provider fetches from and how long it may take.
type Endpoint struct {
	Name    string
	URL     string
	Timeout time.Duration
}

// Registry maps provider names to endpoints.
type Registry map[string]Endpoint

// Defaults returns the built-in endpoints.
func Defaults() Registry {
	eps := []Endpoint{
		{Name: NameIPAPI, URL: "https://ipapi.co/json/", Timeout: 5 * time.Second},
		{Name: NameIPAPICom, URL: "http://ip-api.com/json/", Timeout: 5 * time.Second},
		{Name: NameOpenMeteo, URL: "https://api.open-meteo.com/v1/forecast", Timeout: 10 * time.Second},
		{Name: NameSampleMovies, URL: "https://api.sampleapis.com/movies", Timeout: 8 * time.Second},
		{Name: NameHitokoto, URL: "https://v1.hitokoto.cn/?c=d&encode=json", Timeout: 5 * time.Second},
		{Name: NameVvhanZhihu, URL: "https://api.vvhan.com/api/hotlist/zhihuHot", Timeout: 8 * time.Second},
		{Name: NameVvhanWeibo, URL: "https://api.vvhan.com/api/hotlist/wbHot", Timeout: 8 * time.Second},
		{Name: NameVvhanToutiao, URL: "https://api.vvhan.com/api/hotlist/toutiaoHot", Timeout: 8 * time.Second},
		{Name: NameWeiboHTML, URL: "https://s.weibo.com/top/summary", Timeout: 8 * time.Second},
		{Name: NameHackerNews, URL: "https://hnrss.org/frontpage", Timeout: 8 * time.Second},
		{Name: NameBing, URL: "https://bing.biturl.top/?resolution=1920&format=json&index=0&mkt=zh-CN", Timeout: 5 * time.Second},
	}
	r := make(Registry, len(eps))
	for _, ep := range eps {
		r[ep.Name] = ep
	}
	return r
}

// Override replaces the URL and/or timeout of a known provider.
// Empty values keep the current setting. Unknown names report false.
func (r Registry) Override(name, url string, timeout time.Duration) bool {
	ep, ok := r[name]
	if !ok {
		return false
	}
	if url != "" {
		ep.URL = url
	}
	if timeout > 0 {
		ep.Timeout = timeout
	}
	r[name] = ep
	return true
}

// Get returns the endpoint for name. Missing names yield an endpoint with
// only the name set, which fails validation at request time.
func (r Registry) Get(name string) Endpoint {
	if ep, ok := r[name]; ok {
		return ep
	}
	return Endpoint{Name: name}
}

// Names lists registered provider names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
