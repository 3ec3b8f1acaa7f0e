package journal

import (
	"sort"
	"time"

	"github.com/KirkDiggler/pourlog/internal/models"
)

// Achievement IDs the default rules unlock
const (
	AchievementFirstRecord   = "1"
	AchievementSevenDayRun   = "2"
	AchievementDistinctTypes = "3"
)

// AchievementRule decides whether an achievement has been earned.
// New milestones are added as rules without touching the record path.
type AchievementRule interface {
	// AchievementID is the achievement unlocked when the rule is satisfied
	AchievementID() string

	// Satisfied reports whether records earn the achievement
	Satisfied(records []*models.DrinkRecord) bool
}

// DefaultRules returns the built-in achievement rules
func DefaultRules() []AchievementRule {
	return []AchievementRule{
		FirstRecordRule{},
		ConsecutiveDaysRule{Days: 7},
		DistinctTypesRule{Min: 5},
	}
}

// FirstRecordRule is satisfied when exactly one record exists
type FirstRecordRule struct{}

func (FirstRecordRule) AchievementID() string { return AchievementFirstRecord }

func (FirstRecordRule) Satisfied(records []*models.DrinkRecord) bool {
	return len(records) == 1
}

// DistinctTypesRule is satisfied once records span at least Min drink types
type DistinctTypesRule struct {
	Min int
}

func (DistinctTypesRule) AchievementID() string { return AchievementDistinctTypes }

func (r DistinctTypesRule) Satisfied(records []*models.DrinkRecord) bool {
	types := make(map[models.DrinkType]struct{})
	for _, rec := range records {
		types[rec.Type] = struct{}{}
	}
	return len(types) >= r.Min
}

// ConsecutiveDaysRule is satisfied when records cover Days consecutive calendar days
type ConsecutiveDaysRule struct {
	Days int
}

func (ConsecutiveDaysRule) AchievementID() string { return AchievementSevenDayRun }

func (r ConsecutiveDaysRule) Satisfied(records []*models.DrinkRecord) bool {
	if r.Days <= 0 {
		return false
	}

	seen := make(map[string]struct{})
	days := make([]time.Time, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Date]; ok {
			continue
		}
		d, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		seen[rec.Date] = struct{}{}
		days = append(days, d)
	}
	if len(days) < r.Days {
		return false
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run >= r.Days {
			return true
		}
	}
	return run >= r.Days
}

// ListAchievements returns every achievement
func (s *service) ListAchievements() []*models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAchievements(s.achievements)
}

// UnlockAchievement unlocks an achievement, keeping the first unlock time
func (s *service) UnlockAchievement(input *UnlockAchievementInput) *UnlockAchievementOutput {
	if input == nil {
		return &UnlockAchievementOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unlockLocked(input.AchievementID)
}

// EvaluateAchievements runs every rule against the current records
func (s *service) EvaluateAchievements() *EvaluateAchievementsOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &EvaluateAchievementsOutput{Unlocked: s.evaluateLocked()}
}

// evaluateLocked unlocks the achievements of satisfied rules and returns the
// ones that were newly unlocked. Callers must hold mu.
func (s *service) evaluateLocked() []*models.Achievement {
	var unlocked []*models.Achievement
	for _, rule := range s.rules {
		if !rule.Satisfied(s.records) {
			continue
		}
		out := s.unlockLocked(rule.AchievementID())
		if out.NewlyUnlocked {
			unlocked = append(unlocked, out.Achievement)
		}
	}
	return unlocked
}

// unlockLocked unlocks a single achievement. Callers must hold mu.
func (s *service) unlockLocked(id string) *UnlockAchievementOutput {
	for _, a := range s.achievements {
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return &UnlockAchievementOutput{Achievement: a.Clone(), Found: true}
		}

		now := s.clock.Now()
		a.Unlocked = true
		a.UnlockedAt = &now
		s.logger.Info("journal.achievement_unlocked", "id", a.ID, "name", a.Name)

		return &UnlockAchievementOutput{
			Achievement:   a.Clone(),
			Found:         true,
			NewlyUnlocked: true,
		}
	}
	return &UnlockAchievementOutput{}
}

func cloneAchievements(in []*models.Achievement) []*models.Achievement {
	out := make([]*models.Achievement, 0, len(in))
	for _, a := range in {
		out = append(out, a.Clone())
	}
	return out
}
