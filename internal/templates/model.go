package templates

// Template is a resume layout offered by the builder gallery.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
	Rating      float64 `json:"rating"`
	Downloads   int     `json:"downloads"`
}

// Filter narrows template listings. Zero values match everything.
type Filter struct {
	Category string
	Featured bool
}
