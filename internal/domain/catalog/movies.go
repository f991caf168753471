package catalog

import "newtab-feed/internal/domain/entity"

var movies = []entity.Movie{
	{
		Title: "霸王别姬", OriginalTitle: "霸王别姬", Year: "1993", Rating: 9.6,
		Genre: "剧情 / 爱情", Director: "陈凯歌",
		Poster: "https://picsum.photos/seed/movie-bawang/300/450.jpg",
		Quote:  "风华绝代，人生如戏。",
	},
	{
		Title: "活着", OriginalTitle: "活着", Year: "1994", Rating: 9.3,
		Genre: "剧情 / 历史", Director: "张艺谋",
		Poster: "https://picsum.photos/seed/movie-huozhe/300/450.jpg",
		Quote:  "人是为了活着本身而活着的。",
	},
	{
		Title: "大话西游之大圣娶亲", OriginalTitle: "大话西游之大圣娶亲", Year: "1995", Rating: 9.2,
		Genre: "喜剧 / 爱情", Director: "刘镇伟",
		Poster: "https://picsum.photos/seed/movie-dahuaxiyou/300/450.jpg",
		Quote:  "曾经有一份真诚的爱情放在我面前。",
	},
}

// Movies returns the curated fallback film list.
func Movies() []entity.Movie {
	return append([]entity.Movie(nil), movies...)
}
