package catalog

import "newtab-feed/internal/domain/entity"

var games = []entity.Game{
	{Name: "2048", URL: "https://play2048.co/", Icon: "🎮", Description: "经典数字合成游戏", Color: "#edc22e"},
	{Name: "Wordle", URL: "https://www.nytimes.com/games/wordle/index.html", Icon: "📝", Description: "猜单词游戏", Color: "#6aaa64"},
	{Name: "Tetris", URL: "https://tetris.com/play-tetris", Icon: "🧩", Description: "俄罗斯方块", Color: "#0094d4"},
	{Name: "Pac-Man", URL: "https://www.google.com/logos/2010/pacman10-i.html", Icon: "👾", Description: "吃豆人经典", Color: "#ffcc00"},
	{Name: "Snake", URL: "https://www.google.com/fbx?fbx=snake_arcade", Icon: "🐍", Description: "贪吃蛇", Color: "#4caf50"},
	{Name: "Minesweeper", URL: "https://minesweeper.online/", Icon: "💣", Description: "扫雷", Color: "#757575"},
}

// Games returns the recommended browser games.
func Games() []entity.Game {
	return append([]entity.Game(nil), games...)
}
