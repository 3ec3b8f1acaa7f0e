package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pourlog/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Len(t, cat.Venues, 2)
	assert.Len(t, cat.Achievements, 3)
	assert.NotEmpty(t, cat.Articles)
	assert.Equal(t, "yamazaki-12", cat.Featured)

	ids := make([]string, 0, len(cat.Achievements))
	for _, a := range cat.Achievements {
		ids = append(ids, a.ID)
		assert.False(t, a.Unlocked)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)

	assert.Equal(t, models.DrinkTypeWhiskey, cat.Articles[0].Category)
	require.NotNil(t, cat.Venues[1].Rating)
	assert.Equal(t, 4.8, *cat.Venues[1].Rating)
	assert.Equal(t, "19:00-03:00", cat.Venues[1].OpenHours)
}

func TestRecommendationReturnsCopy(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	rec, ok := cat.Recommendation("yamazaki-12")
	require.True(t, ok)
	rec.Reason = "changed"

	again, _ := cat.Recommendation("yamazaki-12")
	assert.NotEqual(t, "changed", again.Reason)

	_, ok = cat.Recommendation("missing")
	assert.False(t, ok)
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "duplicate venue",
			yaml: "venues:\n  - id: a\n  - id: a\n",
			want: ErrDuplicateID,
		},
		{
			name: "missing achievement id",
			yaml: "achievements:\n  - name: nameless\n",
			want: ErrMissingID,
		},
		{
			name: "unknown article category",
			yaml: "articles:\n  - id: x\n    category: mead\n",
			want: ErrInvalidCategory,
		},
		{
			name: "latitude out of range",
			yaml: "venues:\n  - id: a\n    latitude: 91\n",
			want: ErrInvalidLocation,
		},
		{
			name: "featured not a candidate",
			yaml: "recommendations:\n  featured: nope\n",
			want: ErrUnknownFeatured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var catErr *CatalogError
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, "catalog.validate", catErr.Op)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("venues: [unterminated"), "broken.yaml")
	require.Error(t, err)

	var catErr *CatalogError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "catalog.parse", catErr.Op)
	assert.Equal(t, "broken.yaml", catErr.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("achievements:\n  - id: \"9\"\n    name: Night Owl\n"), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Achievements, 1)
	assert.Equal(t, "Night Owl", cat.Achievements[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
