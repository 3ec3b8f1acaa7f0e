package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDrinkType(t *testing.T) {
	got, ok := ParseDrinkType("  Whiskey ")
	assert.True(t, ok)
	assert.Equal(t, DrinkTypeWhiskey, got)

	_, ok = ParseDrinkType("mead")
	assert.False(t, ok)

	_, ok = ParseDrinkType("")
	assert.False(t, ok)
}

func TestDrinkType_EveryTypeHasLabelAndEmoji(t *testing.T) {
	for _, dt := range AllDrinkTypes() {
		assert.True(t, dt.Valid(), dt)
		assert.NotEmpty(t, dt.Label(), dt)
		assert.NotEmpty(t, dt.Emoji(), dt)
	}
	assert.Equal(t, "Other", DrinkTypeCustom.Label())
	assert.Empty(t, DrinkType("mead").Label())
}

func TestDrinkRecordPatch_Apply(t *testing.T) {
	record := &DrinkRecord{ID: "r1", Brand: "Tsingtao", ABV: 4.7, Volume: 500, Notes: "crisp"}

	abv := 5.2
	notes := ""
	patch := &DrinkRecordPatch{ABV: &abv, Notes: &notes}
	assert.False(t, patch.IsEmpty())

	patch.Apply(record)

	assert.Equal(t, "r1", record.ID)
	assert.Equal(t, "Tsingtao", record.Brand)
	assert.Equal(t, 5.2, record.ABV)
	assert.Equal(t, 500.0, record.Volume)
	assert.Empty(t, record.Notes)
}

func TestDrinkRecordPatch_Empty(t *testing.T) {
	var nilPatch *DrinkRecordPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&DrinkRecordPatch{}).IsEmpty())

	record := &DrinkRecord{Brand: "kept"}
	nilPatch.Apply(record)
	assert.Equal(t, "kept", record.Brand)
}

func TestRecordFilter_IsEmpty(t *testing.T) {
	var f *RecordFilter
	assert.True(t, f.IsEmpty())
	assert.True(t, (&RecordFilter{}).IsEmpty())
	assert.False(t, (&RecordFilter{Brand: "x"}).IsEmpty())
	assert.False(t, (&RecordFilter{ABVRange: &ABVRange{Max: 10}}).IsEmpty())
}

func TestViewMode_Valid(t *testing.T) {
	assert.True(t, ViewModeList.Valid())
	assert.True(t, ViewModeCalendar.Valid())
	assert.False(t, ViewMode("grid").Valid())
}
