package models

import (
	"time"
)

// DateLayout is the calendar-day format used for record and recommendation dates
const DateLayout = "2006-01-02"

// DrinkRecord is a single logged drink
type DrinkRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// Date is the calendar day the drink was had, formatted with DateLayout
	Date string `json:"date"`

	// Type is the drink category
	Type DrinkType `json:"type"`

	// Brand is the brand or name of the drink
	Brand string `json:"brand"`

	// ABV is the alcohol by volume percentage
	ABV float64 `json:"abv"`

	// Volume is the amount drunk in milliliters
	Volume float64 `json:"volume"`

	// Location is where the drink was had
	Location string `json:"location,omitempty"`

	// Mood is how the user felt
	Mood string `json:"mood,omitempty"`

	// Notes is free-form tasting notes
	Notes string `json:"notes,omitempty"`

	// Photo is an embedded image as a data URI
	Photo string `json:"photo,omitempty"`

	// CreatedAt is when the record was created
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy of the record
func (r *DrinkRecord) Clone() *DrinkRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// DrinkRecordPatch holds the fields to change on a record. Nil fields are left alone.
type DrinkRecordPatch struct {
	Date     *string    `json:"date,omitempty"`
	Type     *DrinkType `json:"type,omitempty"`
	Brand    *string    `json:"brand,omitempty"`
	ABV      *float64   `json:"abv,omitempty"`
	Volume   *float64   `json:"volume,omitempty"`
	Location *string    `json:"location,omitempty"`
	Mood     *string    `json:"mood,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	Photo    *string    `json:"photo,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *DrinkRecordPatch) IsEmpty() bool {
	return p == nil || (p.Date == nil && p.Type == nil && p.Brand == nil && p.ABV == nil &&
		p.Volume == nil && p.Location == nil && p.Mood == nil && p.Notes == nil && p.Photo == nil)
}

// Apply overwrites the supplied fields on r
func (p *DrinkRecordPatch) Apply(r *DrinkRecord) {
	if p == nil || r == nil {
		return
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Brand != nil {
		r.Brand = *p.Brand
	}
	if p.ABV != nil {
		r.ABV = *p.ABV
	}
	if p.Volume != nil {
		r.Volume = *p.Volume
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Mood != nil {
		r.Mood = *p.Mood
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Photo != nil {
		r.Photo = *p.Photo
	}
}
