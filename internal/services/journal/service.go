package journal

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/pourlog/internal/catalog"
	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/common/picker"
	"github.com/KirkDiggler/pourlog/internal/common/uuid"
	"github.com/KirkDiggler/pourlog/internal/models"
)

// maxIDAttempts bounds how often a colliding generated ID is regenerated
// before a suffix is appended instead.
const maxIDAttempts = 8

// service implements the Service interface.
// Every operation holds mu for its whole duration, so operations never interleave.
type service struct {
	mu sync.RWMutex

	clock         clock.Clock
	uuidGenerator uuid.UUID
	picker        picker.Picker
	catalog       *catalog.Catalog
	rules         []AchievementRule
	logger        *slog.Logger

	records        []*models.DrinkRecord
	venues         []*models.Venue
	checkedIn      map[string]struct{}
	articles       []*models.Article
	read           map[string]struct{}
	achievements   []*models.Achievement
	recommendation *models.DailyRecommendation
	view           models.ViewMode
}

// New creates a journal seeded from the configured catalog
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	p := cfg.Picker
	if p == nil {
		p = picker.New(nil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &service{
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		picker:        p,
		catalog:       cfg.Catalog,
		rules:         rules,
		logger:        logger,
		records:       []*models.DrinkRecord{},
		checkedIn:     make(map[string]struct{}),
		read:          make(map[string]struct{}),
		view:          models.ViewModeList,
	}

	for _, v := range cfg.Catalog.Venues {
		s.venues = append(s.venues, v.Clone())
	}
	for _, a := range cfg.Catalog.Articles {
		s.articles = append(s.articles, a.Clone())
	}
	s.achievements = cloneAchievements(cfg.Catalog.Achievements)

	if cfg.Catalog.Featured != "" {
		if rec, ok := cfg.Catalog.Recommendation(cfg.Catalog.Featured); ok {
			rec.Date = clock.Today(s.clock)
			s.recommendation = rec
		}
	}

	return s, nil
}

// AddDrinkRecord stores a new record, newest first, then runs the achievement rules
func (s *service) AddDrinkRecord(input *AddDrinkRecordInput) *AddDrinkRecordOutput {
	if input == nil {
		input = &AddDrinkRecordInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.DrinkRecord{
		ID:        s.newRecordID(),
		Date:      input.Date,
		Type:      input.Type,
		Brand:     input.Brand,
		ABV:       input.ABV,
		Volume:    input.Volume,
		Location:  input.Location,
		Mood:      input.Mood,
		Notes:     input.Notes,
		Photo:     input.Photo,
		CreatedAt: s.clock.Now(),
	}

	s.records = append([]*models.DrinkRecord{record}, s.records...)
	s.logger.Debug("journal.record_added", "id", record.ID, "type", record.Type, "count", len(s.records))

	unlocked := s.evaluateLocked()

	return &AddDrinkRecordOutput{
		Record:   record.Clone(),
		Unlocked: unlocked,
	}
}

// newRecordID returns an ID no stored record uses. Callers must hold mu.
func (s *service) newRecordID() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.uuidGenerator.NewUUID()
		if id != "" && s.recordIndex(id) < 0 {
			return id
		}
	}

	for n := len(s.records) + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if s.recordIndex(candidate) < 0 {
			return candidate
		}
	}
}

// recordIndex returns the position of the record with id, or -1. Callers must hold mu.
func (s *service) recordIndex(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// UpdateDrinkRecord overwrites the supplied fields. Achievements are not re-evaluated.
func (s *service) UpdateDrinkRecord(input *UpdateDrinkRecordInput) *UpdateDrinkRecordOutput {
	if input == nil {
		return &UpdateDrinkRecordOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.recordIndex(input.ID)
	if i < 0 {
		return &UpdateDrinkRecordOutput{}
	}

	input.Patch.Apply(s.records[i])

	return &UpdateDrinkRecordOutput{
		Record: s.records[i].Clone(),
		Found:  true,
	}
}

// DeleteDrinkRecord removes a record. Unlocked achievements stay unlocked.
func (s *service) DeleteDrinkRecord(input *DeleteDrinkRecordInput) *DeleteDrinkRecordOutput {
	if input == nil {
		return &DeleteDrinkRecordOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.recordIndex(input.ID)
	if i < 0 {
		return &DeleteDrinkRecordOutput{}
	}

	s.records = append(s.records[:i:i], s.records[i+1:]...)
	return &DeleteDrinkRecordOutput{Found: true}
}

// GetDrinkRecord looks up a single record
func (s *service) GetDrinkRecord(input *GetDrinkRecordInput) *GetDrinkRecordOutput {
	if input == nil {
		return &GetDrinkRecordOutput{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.recordIndex(input.ID)
	if i < 0 {
		return &GetDrinkRecordOutput{}
	}
	return &GetDrinkRecordOutput{
		Record: s.records[i].Clone(),
		Found:  true,
	}
}

// ListDrinkRecords returns every record, newest first
func (s *service) ListDrinkRecords() []*models.DrinkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRecords(s.records)
}

// GetFilteredRecords returns the records matching every supplied predicate, in stored order
func (s *service) GetFilteredRecords(input *GetFilteredRecordsInput) *GetFilteredRecordsOutput {
	var filter *models.RecordFilter
	if input != nil {
		filter = input.Filter
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return &GetFilteredRecordsOutput{
		Records: filterRecords(s.records, filter),
	}
}

// GroupRecordsByDate buckets the filtered records per day, newest day first
func (s *service) GroupRecordsByDate(input *GroupRecordsByDateInput) *GroupRecordsByDateOutput {
	var filter *models.RecordFilter
	if input != nil {
		filter = input.Filter
	}

	s.mu.RLock()
	matched := filterRecords(s.records, filter)
	s.mu.RUnlock()

	byDate := make(map[string]*DateGroup)
	groups := make([]*DateGroup, 0)
	for _, r := range matched {
		g, ok := byDate[r.Date]
		if !ok {
			g = &DateGroup{Date: r.Date}
			byDate[r.Date] = g
			groups = append(groups, g)
		}
		g.Records = append(g.Records, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})

	return &GroupRecordsByDateOutput{Groups: groups}
}

// filterRecords returns copies of the records matching filter
func filterRecords(records []*models.DrinkRecord, filter *models.RecordFilter) []*models.DrinkRecord {
	out := make([]*models.DrinkRecord, 0, len(records))
	if filter.IsEmpty() {
		return append(out, cloneRecords(records)...)
	}

	brand := ""
	if filter.Brand != "" {
		brand = fold(filter.Brand)
	}

	for _, r := range records {
		if filter.Type != nil && r.Type != *filter.Type {
			continue
		}
		if brand != "" && !strings.Contains(fold(r.Brand), brand) {
			continue
		}
		if filter.ABVRange != nil && (r.ABV < filter.ABVRange.Min || r.ABV > filter.ABVRange.Max) {
			continue
		}
		if filter.DateRange != nil && !inDateRange(r.Date, filter.DateRange) {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

// inDateRange compares ISO dates as strings. An empty bound is open.
func inDateRange(date string, rng *models.DateRange) bool {
	if rng.From != "" && date < rng.From {
		return false
	}
	if rng.To != "" && date > rng.To {
		return false
	}
	return true
}

// fold returns s case-folded for case-insensitive matching
func fold(s string) string {
	return cases.Fold().String(s)
}

func cloneRecords(records []*models.DrinkRecord) []*models.DrinkRecord {
	out := make([]*models.DrinkRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out
}
