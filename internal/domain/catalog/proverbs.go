package catalog

import "newtab-feed/internal/domain/entity"

var proverbs = []entity.Proverb{
	{Text: "千里之行，始于足下。", Author: "老子", Source: "《道德经》", Category: "励志"},
	{Text: "学而不思则罔，思而不学则殆。", Author: "孔子", Source: "《论语》", Category: "学习"},
	{Text: "己所不欲，勿施于人。", Author: "孔子", Source: "《论语》", Category: "修养"},
	{Text: "天行健，君子以自强不息。", Author: "《周易》", Source: "《周易·乾卦》", Category: "励志"},
	{Text: "知之为知之，不知为不知，是知也。", Author: "孔子", Source: "《论语》", Category: "学习"},
	{Text: "三人行，必有我师焉。", Author: "孔子", Source: "《论语》", Category: "学习"},
	{Text: "欲穷千里目，更上一层楼。", Author: "王之涣", Source: "《登鹳雀楼》", Category: "励志"},
	{Text: "读书破万卷，下笔如有神。", Author: "杜甫", Source: "《奉赠韦左丞丈二十二韵》", Category: "学习"},
	{Text: "非淡泊无以明志，非宁静无以致远。", Author: "诸葛亮", Source: "《诫子书》", Category: "修养"},
	{Text: "不以物喜，不以己悲。", Author: "范仲淹", Source: "《岳阳楼记》", Category: "修养"},
	{Text: "业精于勤，荒于嬉；行成于思，毁于随。", Author: "韩愈", Source: "《进学解》", Category: "学习"},
	{Text: "书山有路勤为径，学海无涯苦作舟。", Author: "韩愈", Source: "古训", Category: "学习"},
	{Text: "少壮不努力，老大徒伤悲。", Author: "《长歌行》", Source: "汉乐府", Category: "励志"},
	{Text: "宝剑锋从磨砺出，梅花香自苦寒来。", Author: "古训", Source: "古训", Category: "励志"},
	{Text: "海纳百川，有容乃大。", Author: "林则徐", Source: "对联", Category: "修养"},
	{Text: "路漫漫其修远兮，吾将上下而求索。", Author: "屈原", Source: "《离骚》", Category: "励志"},
	{Text: "不积跬步，无以至千里；不积小流，无以成江海。", Author: "荀子", Source: "《劝学》", Category: "励志"},
	{Text: "锲而舍之，朽木不折；锲而不舍，金石可镂。", Author: "荀子", Source: "《劝学》", Category: "励志"},
	{Text: "穷则独善其身，达则兼济天下。", Author: "孟子", Source: "《孟子》", Category: "修养"},
	{Text: "人无远虑，必有近忧。", Author: "孔子", Source: "《论语》", Category: "智慧"},
	{Text: "工欲善其事，必先利其器。", Author: "孔子", Source: "《论语》", Category: "智慧"},
	{Text: "温故而知新，可以为师矣。", Author: "孔子", Source: "《论语》", Category: "学习"},
	{Text: "博学之，审问之，慎思之，明辨之，笃行之。", Author: "《中庸》", Source: "《礼记·中庸》", Category: "学习"},
	{Text: "天下兴亡，匹夫有责。", Author: "顾炎武", Source: "《日知录》", Category: "责任"},
	{Text: "先天下之忧而忧，后天下之乐而乐。", Author: "范仲淹", Source: "《岳阳楼记》", Category: "责任"},
	{Text: "生于忧患，死于安乐。", Author: "孟子", Source: "《孟子》", Category: "智慧"},
	{Text: "君子坦荡荡，小人长戚戚。", Author: "孔子", Source: "《论语》", Category: "修养"},
	{Text: "知者不惑，仁者不忧，勇者不惧。", Author: "孔子", Source: "《论语》", Category: "智慧"},
	{Text: "有志者事竟成。", Author: "《后汉书》", Source: "《后汉书》", Category: "励志"},
	{Text: "纸上得来终觉浅，绝知此事要躬行。", Author: "陆游", Source: "《冬夜读书示子聿》", Category: "实践"},
	{Text: "书到用时方恨少，事非经过不知难。", Author: "陆游", Source: "古训", Category: "学习"},
	{Text: "古之立大事者，不惟有超世之才，亦必有坚韧不拔之志。", Author: "苏轼", Source: "《晁错论》", Category: "励志"},
	{Text: "学无止境。", Author: "荀子", Source: "《劝学》", Category: "学习"},
	{Text: "不经一番寒彻骨，怎得梅花扑鼻香。", Author: "黄檗禅师", Source: "《上堂开示颂》", Category: "励志"},
	{Text: "长风破浪会有时，直挂云帆济沧海。", Author: "李白", Source: "《行路难》", Category: "励志"},
	{Text: "问渠那得清如许，为有源头活水来。", Author: "朱熹", Source: "《观书有感》", Category: "学习"},
	{Text: "横看成岭侧成峰，远近高低各不同。", Author: "苏轼", Source: "《题西林壁》", Category: "智慧"},
	{Text: "会当凌绝顶，一览众山小。", Author: "杜甫", Source: "《望岳》", Category: "励志"},
	{Text: "山重水复疑无路，柳暗花明又一村。", Author: "陆游", Source: "《游山西村》", Category: "智慧"},
	{Text: "沉舟侧畔千帆过，病树前头万木春。", Author: "刘禹锡", Source: "《酬乐天扬州初逢席上见赠》", Category: "智慧"},
}

// Proverbs returns the curated proverb collection.
func Proverbs() []entity.Proverb {
	return append([]entity.Proverb(nil), proverbs...)
}
