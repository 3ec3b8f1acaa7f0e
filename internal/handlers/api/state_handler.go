package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/backup"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// ListAchievements returns every achievement
func (a *API) ListAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": a.journal.ListAchievements()})
}

// GetRecommendation returns today's recommendation, which may be null
func (a *API) GetRecommendation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recommendation": a.journal.DailyRecommendation()})
}

// SetRecommendation replaces the recommendation
func (a *API) SetRecommendation(c *gin.Context) {
	var rec models.DailyRecommendation
	if !bindJSON(c, &rec, "invalid recommendation payload") {
		return
	}
	if rec.ID == "" || rec.Drink.Name == "" {
		respondError(c, http.StatusBadRequest, "id and drink name are required")
		return
	}
	if !rec.Drink.Type.Valid() {
		respondError(c, http.StatusBadRequest, "invalid drink type")
		return
	}

	a.journal.SetDailyRecommendation(&journal.SetDailyRecommendationInput{Recommendation: &rec})
	c.JSON(http.StatusOK, gin.H{"recommendation": a.journal.DailyRecommendation()})
}

// RotateRecommendation features a random catalog candidate
func (a *API) RotateRecommendation(c *gin.Context) {
	out := a.journal.RotateDailyRecommendation(&journal.RotateDailyRecommendationInput{})
	c.JSON(http.StatusOK, gin.H{
		"recommendation": out.Recommendation,
		"rotated":        out.Rotated,
	})
}

type viewPayload struct {
	View models.ViewMode `json:"view"`
}

// GetView returns the history layout
func (a *API) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, viewPayload{View: a.journal.CurrentView()})
}

// SetView changes the history layout
func (a *API) SetView(c *gin.Context) {
	var payload viewPayload
	if !bindJSON(c, &payload, "invalid view payload") {
		return
	}
	if !payload.View.Valid() {
		respondError(c, http.StatusBadRequest, "view must be list or calendar")
		return
	}

	a.journal.SetCurrentView(&journal.SetCurrentViewInput{View: payload.View})
	c.JSON(http.StatusOK, viewPayload{View: a.journal.CurrentView()})
}

// GetStats returns statistics for the range query parameter
func (a *API) GetStats(c *gin.Context) {
	rng, ok := analytics.ParseRange(c.Query("range"))
	if !ok {
		respondError(c, http.StatusBadRequest, analytics.ErrInvalidRange.Error())
		return
	}

	out, err := a.analytics.GetStats(&analytics.GetStatsInput{Range: rng})
	if err != nil {
		a.logger.Error("api.stats_failed", "range", rng, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, out.Stats)
}

// GetProfile returns the profile counters
func (a *API) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, a.journal.GetProfileSummary())
}

// SaveSnapshot writes the journal to durable storage
func (a *API) SaveSnapshot(c *gin.Context) {
	out, err := a.backup.Save(c.Request.Context(), &backup.SaveInput{OwnerID: a.owner})
	if err != nil {
		a.logger.Error("api.snapshot_save_failed", "owner", a.owner, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to save snapshot")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"savedAt":     out.SavedAt,
		"recordCount": out.RecordCount,
	})
}

// RestoreSnapshot replaces the journal with the saved snapshot
func (a *API) RestoreSnapshot(c *gin.Context) {
	out, err := a.backup.Restore(c.Request.Context(), &backup.RestoreInput{OwnerID: a.owner})
	if err != nil {
		a.logger.Error("api.snapshot_restore_failed", "owner", a.owner, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to restore snapshot")
		return
	}
	if !out.Restored {
		respondError(c, http.StatusNotFound, "no snapshot saved")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"savedAt":     out.SavedAt,
		"recordCount": out.RecordCount,
	})
}
