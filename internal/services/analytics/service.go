package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/models"
)

const (
	weekSeriesDays    = 7
	defaultSeriesDays = 30
)

type service struct {
	source RecordSource
	clock  clock.Clock
}

// New creates a new analytics service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Source == nil {
		return nil, ErrNilSource
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		source: cfg.Source,
		clock:  cfg.Clock,
	}, nil
}

// GetStats summarises the records in the requested window.
// Week windows start on Monday. Records with unparseable dates only count toward RangeAll.
func (s *service) GetStats(input *GetStatsInput) (*GetStatsOutput, error) {
	rng := RangeMonth
	if input != nil && input.Range != "" {
		rng = input.Range
	}

	today := s.clock.Now()
	loc := today.Location()

	begin, end, windowed, err := window(rng, today)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Range: rng,
		Types: []*TypeStat{},
		Moods: []*MoodStat{},
	}
	if windowed {
		stats.From = begin.Format(models.DateLayout)
		stats.To = end.Format(models.DateLayout)
	}

	var records []*models.DrinkRecord
	for _, r := range s.source.ListDrinkRecords() {
		if !windowed {
			records = append(records, r)
			continue
		}
		d, err := time.ParseInLocation(models.DateLayout, r.Date, loc)
		if err != nil {
			continue
		}
		if !d.Before(begin) && !d.After(end) {
			records = append(records, r)
		}
	}

	summarize(stats, records)
	stats.Daily = dailySeries(records, today, seriesDays(rng))

	for _, a := range s.source.ListAchievements() {
		if a.Unlocked {
			stats.EarnedAchievements++
		}
	}

	return &GetStatsOutput{Stats: stats}, nil
}

// window returns the inclusive bounds of rng around t
func window(rng Range, t time.Time) (time.Time, time.Time, bool, error) {
	cal := (&now.Config{WeekStartDay: time.Monday, TimeLocation: t.Location()}).With(t)

	switch rng {
	case RangeWeek:
		return cal.BeginningOfWeek(), cal.EndOfWeek(), true, nil
	case RangeMonth:
		return cal.BeginningOfMonth(), cal.EndOfMonth(), true, nil
	case RangeYear:
		return cal.BeginningOfYear(), cal.EndOfYear(), true, nil
	case RangeAll:
		return time.Time{}, time.Time{}, false, nil
	default:
		return time.Time{}, time.Time{}, false, ErrInvalidRange
	}
}

func seriesDays(rng Range) int {
	if rng == RangeWeek {
		return weekSeriesDays
	}
	return defaultSeriesDays
}

// summarize fills the totals, distributions and favourites of stats
func summarize(stats *Stats, records []*models.DrinkRecord) {
	venues := make(map[string]struct{})
	typeStats := make(map[models.DrinkType]*TypeStat)
	brands := make(map[string]int)
	moods := make(map[Mood]int)

	var abvSum float64
	for _, r := range records {
		stats.TotalRecords++
		stats.TotalVolume += r.Volume
		abvSum += r.ABV

		if loc := strings.TrimSpace(r.Location); loc != "" {
			venues[loc] = struct{}{}
		}

		ts, ok := typeStats[r.Type]
		if !ok {
			ts = &TypeStat{Type: r.Type, Label: r.Type.Label()}
			typeStats[r.Type] = ts
		}
		ts.Count++
		ts.Volume += r.Volume

		if brand := strings.TrimSpace(r.Brand); brand != "" {
			brands[brand]++
		}
		moods[classifyMood(r.Mood)]++
	}

	if stats.TotalRecords > 0 {
		stats.AverageABV = abvSum / float64(stats.TotalRecords)
	}
	stats.UniqueVenues = len(venues)

	best := 0
	for _, t := range models.AllDrinkTypes() {
		ts, ok := typeStats[t]
		if !ok {
			continue
		}
		stats.Types = append(stats.Types, ts)
		if ts.Count > best {
			best = ts.Count
			stats.FavouriteType = t
		}
	}

	names := make([]string, 0, len(brands))
	for b := range brands {
		names = append(names, b)
	}
	sort.Strings(names)
	best = 0
	for _, b := range names {
		if brands[b] > best {
			best = brands[b]
			stats.FavouriteBrand = b
		}
	}

	for _, m := range AllMoods() {
		if moods[m] > 0 {
			stats.Moods = append(stats.Moods, &MoodStat{Mood: m, Emoji: m.Emoji(), Count: moods[m]})
		}
	}
}

// dailySeries returns one point per day for the days ending today, oldest first
func dailySeries(records []*models.DrinkRecord, today time.Time, days int) []*DayStat {
	byDate := make(map[string]*DayStat, days)
	series := make([]*DayStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := &DayStat{Date: today.AddDate(0, 0, -i).Format(models.DateLayout)}
		byDate[d.Date] = d
		series = append(series, d)
	}

	for _, r := range records {
		if d, ok := byDate[r.Date]; ok {
			d.Count++
			d.Volume += r.Volume
		}
	}
	return series
}

// moodAliases maps localized mood labels onto their buckets
var moodAliases = map[string]Mood{
	"开心": MoodHappy,
	"放松": MoodRelaxed,
	"庆祝": MoodCelebrate,
	"社交": MoodSocial,
	"品鉴": MoodTasting,
	"其他": MoodOther,
}

func classifyMood(raw string) Mood {
	trimmed := strings.TrimSpace(raw)
	if m, ok := moodAliases[trimmed]; ok {
		return m
	}
	switch m := Mood(strings.ToLower(trimmed)); m {
	case MoodHappy, MoodRelaxed, MoodCelebrate, MoodSocial, MoodTasting:
		return m
	default:
		return MoodOther
	}
}
