package models

// Article is an educational piece about a drink category
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`

	// Content is the article body in markdown
	Content string `json:"content"`

	Category    DrinkType `json:"category"`
	Image       string    `json:"image,omitempty"`
	ReadCount   int       `json:"readCount"`
	PublishDate string    `json:"publishDate"`

	// Read is derived from the journal's read set when the article is read back
	Read bool `json:"read"`
}

// Clone returns a copy of the article
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
