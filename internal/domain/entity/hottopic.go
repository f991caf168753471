package entity

// HotTopicLimit is the maximum number of items kept per hot-topic source.
const HotTopicLimit = 5

// HotTopic is a single ranked entry of a trending list.
type HotTopic struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Hot   string `json:"hot"`
	Index int    `json:"index"`
}

// HotTopics maps a source identifier (zhihu, weibo, ...) to its ranked list.
type HotTopics map[string][]HotTopic

// Rank truncates items to limit and renumbers them from 1.
func Rank(items []HotTopic, limit int) []HotTopic {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	ranked := make([]HotTopic, len(items))
	for i, it := range items {
		it.Index = i + 1
		ranked[i] = it
	}
	return ranked
}
