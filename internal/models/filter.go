package models

// ABVRange is an inclusive alcohol-by-volume bound
type ABVRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DateRange is an inclusive calendar-day bound, compared as DateLayout strings
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RecordFilter narrows the record collection. Unset predicates match everything.
type RecordFilter struct {
	// Type matches records of exactly this type
	Type *DrinkType `json:"type,omitempty"`

	// Brand matches records whose brand contains this text, ignoring case
	Brand string `json:"brand,omitempty"`

	// ABVRange matches records with Min <= abv <= Max
	ABVRange *ABVRange `json:"abvRange,omitempty"`

	// DateRange matches records with From <= date <= To
	DateRange *DateRange `json:"dateRange,omitempty"`
}

// IsEmpty reports whether the filter has no predicates
func (f *RecordFilter) IsEmpty() bool {
	return f == nil || (f.Type == nil && f.Brand == "" && f.ABVRange == nil && f.DateRange == nil)
}
