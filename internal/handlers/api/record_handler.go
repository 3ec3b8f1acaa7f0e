package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// ListRecords returns the records matching the query filter, newest first
func (a *API) ListRecords(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	out := a.journal.GetFilteredRecords(&journal.GetFilteredRecordsInput{Filter: filter})
	c.JSON(http.StatusOK, gin.H{"records": out.Records})
}

// RecordsByDate returns the filtered records grouped per day
func (a *API) RecordsByDate(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	out := a.journal.GroupRecordsByDate(&journal.GroupRecordsByDateInput{Filter: filter})
	c.JSON(http.StatusOK, gin.H{"groups": out.Groups})
}

// CreateRecord validates and stores a new record
func (a *API) CreateRecord(c *gin.Context) {
	var form entry.Form
	if !bindJSON(c, &form, "invalid record payload") {
		return
	}

	input, err := a.parser.ParseForm(&form)
	if err != nil {
		respondFormError(c, err)
		return
	}

	out := a.journal.AddDrinkRecord(input)
	c.JSON(http.StatusCreated, gin.H{
		"record":   out.Record,
		"unlocked": out.Unlocked,
	})
}

// GetRecord returns a single record
func (a *API) GetRecord(c *gin.Context) {
	out := a.journal.GetDrinkRecord(&journal.GetDrinkRecordInput{ID: c.Param("id")})
	if !out.Found {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": out.Record})
}

// UpdateRecord applies a partial update to a record
func (a *API) UpdateRecord(c *gin.Context) {
	var form entry.PatchForm
	if !bindJSON(c, &form, "invalid record payload") {
		return
	}

	patch, err := a.parser.ParsePatch(&form)
	if err != nil {
		respondFormError(c, err)
		return
	}

	out := a.journal.UpdateDrinkRecord(&journal.UpdateDrinkRecordInput{
		ID:    c.Param("id"),
		Patch: patch,
	})
	if !out.Found {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": out.Record})
}

// DeleteRecord removes a record
func (a *API) DeleteRecord(c *gin.Context) {
	out := a.journal.DeleteDrinkRecord(&journal.DeleteDrinkRecordInput{ID: c.Param("id")})
	if !out.Found {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}
	c.Status(http.StatusNoContent)
}
