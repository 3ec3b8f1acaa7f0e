package journal

import (
	"log/slog"

	"github.com/KirkDiggler/pourlog/internal/catalog"
	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/common/picker"
	"github.com/KirkDiggler/pourlog/internal/common/uuid"
	"github.com/KirkDiggler/pourlog/internal/models"
)

// Config holds the dependencies of the journal service
type Config struct {
	// Catalog seeds venues, articles, achievements and recommendations
	Catalog *catalog.Catalog

	// Rules are evaluated after every new record. Nil means DefaultRules().
	Rules []AchievementRule

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Picker chooses the rotated recommendation. Optional.
	Picker picker.Picker

	// Logger is optional
	Logger *slog.Logger
}

// AddDrinkRecordInput contains every record field the user supplies.
// Values are expected to be validated already (see the entry package).
type AddDrinkRecordInput struct {
	Date     string
	Type     models.DrinkType
	Brand    string
	ABV      float64
	Volume   float64
	Location string
	Mood     string
	Notes    string
	Photo    string
}

// AddDrinkRecordOutput contains the stored record
type AddDrinkRecordOutput struct {
	Record *models.DrinkRecord

	// Unlocked lists the achievements this record unlocked
	Unlocked []*models.Achievement
}

// UpdateDrinkRecordInput identifies a record and the fields to change
type UpdateDrinkRecordInput struct {
	ID    string
	Patch *models.DrinkRecordPatch
}

// UpdateDrinkRecordOutput contains the record after the update
type UpdateDrinkRecordOutput struct {
	Record *models.DrinkRecord
	Found  bool
}

// DeleteDrinkRecordInput identifies the record to remove
type DeleteDrinkRecordInput struct {
	ID string
}

// DeleteDrinkRecordOutput reports whether a record was removed
type DeleteDrinkRecordOutput struct {
	Found bool
}

// GetDrinkRecordInput identifies the record to fetch
type GetDrinkRecordInput struct {
	ID string
}

// GetDrinkRecordOutput contains the record, if found
type GetDrinkRecordOutput struct {
	Record *models.DrinkRecord
	Found  bool
}

// GetFilteredRecordsInput contains the filter to apply
type GetFilteredRecordsInput struct {
	Filter *models.RecordFilter
}

// GetFilteredRecordsOutput contains the matching records in stored order
type GetFilteredRecordsOutput struct {
	Records []*models.DrinkRecord
}

// GroupRecordsByDateInput contains the filter applied before grouping
type GroupRecordsByDateInput struct {
	Filter *models.RecordFilter
}

// DateGroup is the records logged on one day
type DateGroup struct {
	Date    string                `json:"date"`
	Records []*models.DrinkRecord `json:"records"`
}

// GroupRecordsByDateOutput contains the groups, newest day first
type GroupRecordsByDateOutput struct {
	Groups []*DateGroup
}

// CheckInVenueInput identifies the venue to toggle
type CheckInVenueInput struct {
	VenueID string
}

// CheckInVenueOutput reports the check-in state after the toggle
type CheckInVenueOutput struct {
	CheckedIn bool
}

// ListArticlesInput narrows the article list
type ListArticlesInput struct {
	// Category limits results to one drink type when set
	Category *models.DrinkType

	// Search matches title or summary, ignoring case
	Search string
}

// ListArticlesOutput contains the matching articles
type ListArticlesOutput struct {
	Articles []*models.Article
}

// GetArticleInput identifies the article to fetch
type GetArticleInput struct {
	ID string
}

// GetArticleOutput contains the article, if found
type GetArticleOutput struct {
	Article *models.Article
	Found   bool
}

// RelatedArticlesInput identifies the article to find neighbours for
type RelatedArticlesInput struct {
	ID string

	// Limit caps the result. Zero means DefaultRelatedLimit.
	Limit int
}

// RelatedArticlesOutput contains the related articles
type RelatedArticlesOutput struct {
	Articles []*models.Article
}

// MarkArticleAsReadInput identifies the article that was read
type MarkArticleAsReadInput struct {
	ArticleID string
}

// MarkArticleAsReadOutput reports whether the article had already been read
type MarkArticleAsReadOutput struct {
	AlreadyRead bool
}

// UnlockAchievementInput identifies the achievement to unlock
type UnlockAchievementInput struct {
	AchievementID string
}

// UnlockAchievementOutput contains the achievement after the unlock
type UnlockAchievementOutput struct {
	Achievement *models.Achievement
	Found       bool

	// NewlyUnlocked is false when the achievement was already unlocked
	NewlyUnlocked bool
}

// EvaluateAchievementsOutput lists the achievements unlocked by the evaluation
type EvaluateAchievementsOutput struct {
	Unlocked []*models.Achievement
}

// SetDailyRecommendationInput contains the new recommendation. Nil clears it.
type SetDailyRecommendationInput struct {
	Recommendation *models.DailyRecommendation
}

// RotateDailyRecommendationInput contains the day to feature a candidate for
type RotateDailyRecommendationInput struct {
	// Date defaults to today when empty
	Date string
}

// RotateDailyRecommendationOutput contains the newly featured recommendation
type RotateDailyRecommendationOutput struct {
	Recommendation *models.DailyRecommendation

	// Rotated is false when the catalog has no candidates
	Rotated bool
}

// SetCurrentViewInput contains the layout to switch to
type SetCurrentViewInput struct {
	View models.ViewMode
}

// ProfileSummary holds the counters shown on the profile screen
type ProfileSummary struct {
	RecordCount        int `json:"recordCount"`
	EarnedAchievements int `json:"earnedAchievements"`
	TotalAchievements  int `json:"totalAchievements"`
	VisitedVenues      int `json:"visitedVenues"`
	ReadArticles       int `json:"readArticles"`
}
