package catalog

import "newtab-feed/internal/domain/entity"

// Hot-topic source identifiers.
const (
	SourceZhihu      = "zhihu"
	SourceWeibo      = "weibo"
	SourceToutiao    = "toutiao"
	SourceHackerNews = "hackernews"
)

var backupHotTopics = map[string][]entity.HotTopic{
	SourceZhihu: {
		{Title: "OpenAI 最新模型带来哪些影响？", URL: "https://www.zhihu.com", Hot: "热", Index: 1},
		{Title: "如何高效打造 AI 助手工作流？", URL: "https://www.zhihu.com", Hot: "沸", Index: 2},
		{Title: "年轻人如何平衡副业与生活？", URL: "https://www.zhihu.com", Hot: "热", Index: 3},
		{Title: "2024 年最值得入手的数码设备", URL: "https://www.zhihu.com", Hot: "荐", Index: 4},
		{Title: "在一线城市怎样实现存钱自由？", URL: "https://www.zhihu.com", Hot: "热", Index: 5},
	},
	SourceWeibo: {
		{Title: "世界杯预选赛今晚打响", URL: "https://s.weibo.com/top/summary", Hot: "沸", Index: 1},
		{Title: "新剧开播口碑逆袭", URL: "https://s.weibo.com/top/summary", Hot: "热", Index: 2},
		{Title: "航天员出差记 Vlog 更新", URL: "https://s.weibo.com/top/summary", Hot: "荐", Index: 3},
		{Title: "又一城市宣布发放消费券", URL: "https://s.weibo.com/top/summary", Hot: "新", Index: 4},
		{Title: "这届年轻人开始随手拍云", URL: "https://s.weibo.com/top/summary", Hot: "热", Index: 5},
	},
	SourceToutiao: {
		{Title: "国内首条无人驾驶公交线路开通", URL: "https://www.toutiao.com", Hot: "热", Index: 1},
		{Title: "多地 GDP 半年报公布", URL: "https://www.toutiao.com", Hot: "荐", Index: 2},
		{Title: "中国科研团队再获突破", URL: "https://www.toutiao.com", Hot: "热", Index: 3},
		{Title: "数字人民币试点场景扩容", URL: "https://www.toutiao.com", Hot: "新", Index: 4},
		{Title: "暑期档电影预售成绩抢眼", URL: "https://www.toutiao.com", Hot: "热", Index: 5},
	},
	SourceHackerNews: {
		{Title: "Hacker News", URL: "https://news.ycombinator.com/", Hot: "", Index: 1},
	},
}

// BackupHotTopics returns the static list for source, or nil for an unknown source.
func BackupHotTopics(source string) []entity.HotTopic {
	items, ok := backupHotTopics[source]
	if !ok {
		return nil
	}
	return append([]entity.HotTopic(nil), items...)
}
