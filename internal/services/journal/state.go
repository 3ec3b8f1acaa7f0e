package journal

import (
	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/models"
)

// DailyRecommendation returns the current recommendation, or nil
func (s *service) DailyRecommendation() *models.DailyRecommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.recommendation.Clone()
}

// SetDailyRecommendation replaces the recommendation wholesale
func (s *service) SetDailyRecommendation(input *SetDailyRecommendationInput) {
	if input == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recommendation = input.Recommendation.Clone()
}

// RotateDailyRecommendation features a random catalog candidate for the given day
func (s *service) RotateDailyRecommendation(input *RotateDailyRecommendationInput) *RotateDailyRecommendationOutput {
	date := ""
	if input != nil {
		date = input.Date
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := s.catalog.Recommendations
	if len(candidates) == 0 {
		return &RotateDailyRecommendationOutput{Recommendation: s.recommendation.Clone()}
	}
	if date == "" {
		date = clock.Today(s.clock)
	}

	i := s.picker.Pick(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}

	rec := candidates[i].Clone()
	rec.Date = date
	s.recommendation = rec

	return &RotateDailyRecommendationOutput{
		Recommendation: rec.Clone(),
		Rotated:        true,
	}
}

// CurrentView returns the history layout
func (s *service) CurrentView() models.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// SetCurrentView sets the history layout. Unknown modes are ignored.
func (s *service) SetCurrentView(input *SetCurrentViewInput) {
	if input == nil || !input.View.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = input.View
}

// GetProfileSummary returns the counters shown on the profile screen
func (s *service) GetProfileSummary() *ProfileSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	earned := 0
	for _, a := range s.achievements {
		if a.Unlocked {
			earned++
		}
	}

	visited := 0
	for _, v := range s.venues {
		if _, ok := s.checkedIn[v.ID]; ok {
			visited++
		}
	}

	return &ProfileSummary{
		RecordCount:        len(s.records),
		EarnedAchievements: earned,
		TotalAchievements:  len(s.achievements),
		VisitedVenues:      visited,
		ReadArticles:       len(s.read),
	}
}

// Snapshot returns a copy of all mutable state
func (s *service) Snapshot() *models.JournalState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &models.JournalState{
		Records:             cloneRecords(s.records),
		CheckedInVenueIDs:   sortedKeys(s.checkedIn),
		ReadArticleIDs:      sortedKeys(s.read),
		Achievements:        cloneAchievements(s.achievements),
		DailyRecommendation: s.recommendation.Clone(),
		CurrentView:         s.view,
	}
}

// Restore replaces all mutable state with a copy of state.
// Achievements missing from state keep their catalog definition; unknown ones are ignored.
// Unlocks are never revoked: an achievement unlocked now or in state stays unlocked
// with the earliest known UnlockedAt. Rules are not re-run.
func (s *service) Restore(state *models.JournalState) {
	if state == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]*models.DrinkRecord, 0, len(state.Records))
	seen := make(map[string]struct{}, len(state.Records))
	for _, r := range state.Records {
		if r == nil {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		s.records = append(s.records, r.Clone())
	}

	s.checkedIn = make(map[string]struct{}, len(state.CheckedInVenueIDs))
	for _, id := range state.CheckedInVenueIDs {
		s.checkedIn[id] = struct{}{}
	}

	s.read = make(map[string]struct{}, len(state.ReadArticleIDs))
	for _, id := range state.ReadArticleIDs {
		s.read[id] = struct{}{}
	}

	saved := make(map[string]*models.Achievement, len(state.Achievements))
	for _, a := range state.Achievements {
		if a != nil {
			saved[a.ID] = a
		}
	}
	current := make(map[string]*models.Achievement, len(s.achievements))
	for _, a := range s.achievements {
		current[a.ID] = a
	}
	s.achievements = cloneAchievements(s.catalog.Achievements)
	for _, a := range s.achievements {
		mergeUnlock(a, current[a.ID])
		mergeUnlock(a, saved[a.ID])
	}

	s.recommendation = state.DailyRecommendation.Clone()

	s.view = models.ViewModeList
	if state.CurrentView.Valid() {
		s.view = state.CurrentView
	}
}

// mergeUnlock carries an unlock from src onto dst, keeping the earliest timestamp
func mergeUnlock(dst, src *models.Achievement) {
	if src == nil || !src.Unlocked {
		return
	}
	dst.Unlocked = true
	if src.UnlockedAt == nil {
		return
	}
	if dst.UnlockedAt == nil || src.UnlockedAt.Before(*dst.UnlockedAt) {
		at := *src.UnlockedAt
		dst.UnlockedAt = &at
	}
}
