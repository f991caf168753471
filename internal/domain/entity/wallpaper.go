package entity

// Wallpaper is a background image reference.
type Wallpaper struct {
	Source string `json:"source"`
	URL    string `json:"url"`
}

// Gradient is a named CSS gradient preset.
type Gradient struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Game is a link to a browser game.
type Game struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
