package entity

// Proverb is a short saying with attribution.
type Proverb struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Source   string `json:"source"`
	Category string `json:"category"`
}
