package journal

import "github.com/KirkDiggler/pourlog/internal/models"

// Service is the single source of truth for a user's drinking journal.
// Operations never fail; lookups of unknown ids are no-ops reported through
// the Found flags on the outputs.
type Service interface {
	// AddDrinkRecord stores a new record and evaluates achievement rules
	AddDrinkRecord(input *AddDrinkRecordInput) *AddDrinkRecordOutput

	// UpdateDrinkRecord overwrites the supplied fields of a record
	UpdateDrinkRecord(input *UpdateDrinkRecordInput) *UpdateDrinkRecordOutput

	// DeleteDrinkRecord removes a record
	DeleteDrinkRecord(input *DeleteDrinkRecordInput) *DeleteDrinkRecordOutput

	// GetDrinkRecord looks up a single record
	GetDrinkRecord(input *GetDrinkRecordInput) *GetDrinkRecordOutput

	// ListDrinkRecords returns every record, newest first
	ListDrinkRecords() []*models.DrinkRecord

	// GetFilteredRecords returns the records matching every supplied predicate
	GetFilteredRecords(input *GetFilteredRecordsInput) *GetFilteredRecordsOutput

	// GroupRecordsByDate returns filtered records bucketed per day, newest day first
	GroupRecordsByDate(input *GroupRecordsByDateInput) *GroupRecordsByDateOutput

	// ListVenues returns the venues with their check-in state
	ListVenues() []*models.Venue

	// CheckInVenue toggles the check-in state of a venue
	CheckInVenue(input *CheckInVenueInput) *CheckInVenueOutput

	// ListArticles returns articles, optionally narrowed by category and search text
	ListArticles(input *ListArticlesInput) *ListArticlesOutput

	// GetArticle looks up a single article
	GetArticle(input *GetArticleInput) *GetArticleOutput

	// RelatedArticles returns other articles in the same category
	RelatedArticles(input *RelatedArticlesInput) *RelatedArticlesOutput

	// MarkArticleAsRead adds an article to the read set
	MarkArticleAsRead(input *MarkArticleAsReadInput) *MarkArticleAsReadOutput

	// ListAchievements returns every achievement
	ListAchievements() []*models.Achievement

	// UnlockAchievement unlocks an achievement. Unlocks are permanent.
	UnlockAchievement(input *UnlockAchievementInput) *UnlockAchievementOutput

	// EvaluateAchievements runs the achievement rules against the current records
	EvaluateAchievements() *EvaluateAchievementsOutput

	// DailyRecommendation returns the current recommendation, or nil
	DailyRecommendation() *models.DailyRecommendation

	// SetDailyRecommendation replaces the recommendation wholesale
	SetDailyRecommendation(input *SetDailyRecommendationInput)

	// RotateDailyRecommendation features a catalog candidate for the given day
	RotateDailyRecommendation(input *RotateDailyRecommendationInput) *RotateDailyRecommendationOutput

	// CurrentView returns the history layout
	CurrentView() models.ViewMode

	// SetCurrentView sets the history layout
	SetCurrentView(input *SetCurrentViewInput)

	// GetProfileSummary returns the counters shown on the profile screen
	GetProfileSummary() *ProfileSummary

	// Snapshot returns a copy of all mutable state
	Snapshot() *models.JournalState

	// Restore replaces all mutable state with a copy of state
	Restore(state *models.JournalState)
}
