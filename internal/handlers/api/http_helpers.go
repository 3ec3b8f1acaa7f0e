package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/models"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondFormError reports entry validation failures as 400 and anything else as 500
func respondFormError(c *gin.Context, err error) {
	var formErr entry.FormError
	if errors.As(err, &formErr) {
		respondError(c, http.StatusBadRequest, formErr.Error())
		return
	}
	respondError(c, http.StatusInternalServerError, "internal error")
}

// parseFilter reads the record filter from the query string
func parseFilter(c *gin.Context) (*models.RecordFilter, error) {
	filter := &models.RecordFilter{
		Brand: strings.TrimSpace(c.Query("brand")),
	}

	if raw := c.Query("type"); raw != "" {
		t, ok := models.ParseDrinkType(raw)
		if !ok {
			return nil, errors.New("invalid type")
		}
		filter.Type = &t
	}

	minRaw, maxRaw := c.Query("abv_min"), c.Query("abv_max")
	if minRaw != "" || maxRaw != "" {
		rng := &models.ABVRange{Min: 0, Max: 100}
		var err error
		if minRaw != "" {
			if rng.Min, err = strconv.ParseFloat(minRaw, 64); err != nil {
				return nil, errors.New("invalid abv_min")
			}
		}
		if maxRaw != "" {
			if rng.Max, err = strconv.ParseFloat(maxRaw, 64); err != nil {
				return nil, errors.New("invalid abv_max")
			}
		}
		filter.ABVRange = rng
	}

	from, to := c.Query("date_from"), c.Query("date_to")
	if !validDate(from) {
		return nil, errors.New("invalid date_from")
	}
	if !validDate(to) {
		return nil, errors.New("invalid date_to")
	}
	if from != "" || to != "" {
		filter.DateRange = &models.DateRange{From: from, To: to}
	}

	return filter, nil
}

// validDate reports whether raw is empty or a YYYY-MM-DD date
func validDate(raw string) bool {
	if raw == "" {
		return true
	}
	_, err := time.Parse(models.DateLayout, raw)
	return err == nil
}
