// Package catalog loads the static reference data the journal is seeded with:
// venues, articles, achievements and daily recommendation candidates.
package catalog

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pourlog/internal/models"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the validated seed data
type Catalog struct {
	Venues       []*models.Venue
	Articles     []*models.Article
	Achievements []*models.Achievement

	// Recommendations are the candidates a daily recommendation is drawn from.
	// Their Date is empty; the journal stamps it when one is featured.
	Recommendations []*models.DailyRecommendation

	// Featured is the ID of the candidate shown before any rotation, or empty
	Featured string
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog, "embedded")
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Op: "catalog.load", Path: path, Err: err}
	}
	return Parse(b, path)
}

// Parse decodes and validates catalog YAML. source is only used in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	var dto yamlCatalog
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &CatalogError{Op: "catalog.parse", Path: source, Err: err}
	}
	cat, err := mapCatalog(dto)
	if err != nil {
		return nil, &CatalogError{Op: "catalog.validate", Path: source, Err: err}
	}
	return cat, nil
}

// Recommendation returns a copy of the candidate with the given ID
func (c *Catalog) Recommendation(id string) (*models.DailyRecommendation, bool) {
	for _, r := range c.Recommendations {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return nil, false
}
