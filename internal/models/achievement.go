package models

import "time"

// Achievement is a one-way unlockable milestone
type Achievement struct {
	// ID is the stable identifier rules refer to
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	// Unlocked never goes back to false once set
	Unlocked bool `json:"unlocked"`

	// UnlockedAt is when the achievement was first unlocked
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// Clone returns a deep copy of the achievement
func (a *Achievement) Clone() *Achievement {
	if a == nil {
		return nil
	}
	c := *a
	if a.UnlockedAt != nil {
		at := *a.UnlockedAt
		c.UnlockedAt = &at
	}
	return &c
}
