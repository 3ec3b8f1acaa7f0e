package models

// ViewMode is how the history screen lays out records
type ViewMode string

const (
	ViewModeList     ViewMode = "list"
	ViewModeCalendar ViewMode = "calendar"
)

// Valid reports whether v is a known view mode
func (v ViewMode) Valid() bool {
	switch v {
	case ViewModeList, ViewModeCalendar:
		return true
	default:
		return false
	}
}
