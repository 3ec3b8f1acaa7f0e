package analytics

import "github.com/KirkDiggler/pourlog/internal/models"

//go:generate mockgen -package=mocks -destination=mocks/mock_record_source.go github.com/KirkDiggler/pourlog/internal/services/analytics RecordSource

// RecordSource supplies the journal contents the statistics are computed from
type RecordSource interface {
	ListDrinkRecords() []*models.DrinkRecord
	ListAchievements() []*models.Achievement
}

// Service computes drinking statistics over a time range
type Service interface {
	// GetStats summarises the records that fall in the requested range
	GetStats(input *GetStatsInput) (*GetStatsOutput, error)
}
