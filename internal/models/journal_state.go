package models

// JournalState is a serialisable copy of everything the journal mutates.
// Static catalog data (venues, articles) is not included.
type JournalState struct {
	Records             []*DrinkRecord       `json:"records"`
	CheckedInVenueIDs   []string             `json:"checkedInVenueIds"`
	ReadArticleIDs      []string             `json:"readArticleIds"`
	Achievements        []*Achievement       `json:"achievements"`
	DailyRecommendation *DailyRecommendation `json:"dailyRecommendation,omitempty"`
	CurrentView         ViewMode             `json:"currentView"`
}
