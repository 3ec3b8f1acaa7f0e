package models

// Venue is a bar or shop the user can check in at
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	OpenHours   string   `json:"openHours,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`

	// CheckedIn is derived from the journal's check-in set when the venue is read
	CheckedIn bool `json:"checkedIn"`
}

// Clone returns a deep copy of the venue
func (v *Venue) Clone() *Venue {
	if v == nil {
		return nil
	}
	c := *v
	if v.Rating != nil {
		rating := *v.Rating
		c.Rating = &rating
	}
	return &c
}
