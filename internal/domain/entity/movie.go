package entity

// Movie is a film recommendation with a memorable line.
type Movie struct {
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Year          string  `json:"year"`
	Rating        float64 `json:"rating"`
	Genre         string  `json:"genre"`
	Director      string  `json:"director"`
	Poster        string  `json:"poster"`
	Quote         string  `json:"quote"`
	FullPlot      string  `json:"full_plot,omitempty"`
}
