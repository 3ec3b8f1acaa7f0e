package models

// RecommendedDrink is the drink featured by a daily recommendation
type RecommendedDrink struct {
	Name        string    `json:"name"`
	Type        DrinkType `json:"type"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	ABV         float64   `json:"abv"`
}

// DailyRecommendation is the single featured drink suggestion
type DailyRecommendation struct {
	ID     string           `json:"id"`
	Drink  RecommendedDrink `json:"drink"`
	Reason string           `json:"reason"`

	// Date is the day the recommendation is for, formatted with DateLayout
	Date string `json:"date"`
}

// Clone returns a copy of the recommendation
func (d *DailyRecommendation) Clone() *DailyRecommendation {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
