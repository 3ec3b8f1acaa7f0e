package analytics

import (
	"strings"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/models"
)

// Range is the window statistics are computed over
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
	RangeAll   Range = "all"
)

// ParseRange resolves a range name. Empty input means RangeMonth.
func ParseRange(raw string) (Range, bool) {
	switch r := Range(strings.ToLower(strings.TrimSpace(raw))); r {
	case "":
		return RangeMonth, true
	case RangeWeek, RangeMonth, RangeYear, RangeAll:
		return r, true
	default:
		return "", false
	}
}

// Mood is one of the moods the breakdown groups records into
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodCelebrate Mood = "celebrate"
	MoodSocial    Mood = "social"
	MoodTasting   Mood = "tasting"
	MoodOther     Mood = "other"
)

// AllMoods returns the moods in display order
func AllMoods() []Mood {
	return []Mood{MoodHappy, MoodRelaxed, MoodCelebrate, MoodSocial, MoodTasting, MoodOther}
}

// Emoji returns the icon shown next to the mood
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodRelaxed:
		return "😌"
	case MoodCelebrate:
		return "🎉"
	case MoodSocial:
		return "👥"
	case MoodTasting:
		return "🍷"
	default:
		return "🤔"
	}
}

// Config holds the dependencies of the analytics service
type Config struct {
	Source RecordSource
	Clock  clock.Clock
}

// GetStatsInput selects the window
type GetStatsInput struct {
	Range Range
}

// GetStatsOutput contains the computed statistics
type GetStatsOutput struct {
	Stats *Stats
}

// Stats summarises the records in a window
type Stats struct {
	Range Range `json:"range"`

	// From and To bound the window as YYYY-MM-DD. Both are empty for RangeAll.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	TotalRecords int     `json:"totalRecords"`
	TotalVolume  float64 `json:"totalVolume"`
	AverageABV   float64 `json:"averageAbv"`
	UniqueVenues int     `json:"uniqueVenues"`

	FavouriteType  models.DrinkType `json:"favouriteType,omitempty"`
	FavouriteBrand string           `json:"favouriteBrand,omitempty"`

	Types []*TypeStat `json:"types"`
	Daily []*DayStat  `json:"daily"`
	Moods []*MoodStat `json:"moods"`

	EarnedAchievements int `json:"earnedAchievements"`
}

// TypeStat is the share of one drink type. Types without records are omitted.
type TypeStat struct {
	Type   models.DrinkType `json:"type"`
	Label  string           `json:"label"`
	Count  int              `json:"count"`
	Volume float64          `json:"volume"`
}

// DayStat is one point of the daily series
type DayStat struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Volume float64 `json:"volume"`
}

// MoodStat counts the records logged with a mood. Moods without records are omitted.
type MoodStat struct {
	Mood  Mood   `json:"mood"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}
