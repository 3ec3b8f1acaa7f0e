package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pourlog/internal/models"
)

func mapCatalog(dto yamlCatalog) (*Catalog, error) {
	cat := &Catalog{
		Featured: strings.TrimSpace(dto.Recommendations.Featured),
	}

	seen := make(map[string]struct{})
	for i, v := range dto.Venues {
		if err := checkID("venue", i, v.ID, seen); err != nil {
			return nil, err
		}
		if v.Latitude < -90 || v.Latitude > 90 || v.Longitude < -180 || v.Longitude > 180 {
			return nil, fmt.Errorf("venue %q: %w", v.ID, ErrInvalidLocation)
		}
		cat.Venues = append(cat.Venues, &models.Venue{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			Address:     v.Address,
			Phone:       v.Phone,
			OpenHours:   v.OpenHours,
			Rating:      v.Rating,
		})
	}

	seen = make(map[string]struct{})
	for i, a := range dto.Articles {
		if err := checkID("article", i, a.ID, seen); err != nil {
			return nil, err
		}
		category, ok := models.ParseDrinkType(a.Category)
		if !ok {
			return nil, fmt.Errorf("article %q category %q: %w", a.ID, a.Category, ErrInvalidCategory)
		}
		cat.Articles = append(cat.Articles, &models.Article{
			ID:          a.ID,
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			Category:    category,
			Image:       a.Image,
			ReadCount:   a.ReadCount,
			PublishDate: a.PublishDate,
		})
	}

	seen = make(map[string]struct{})
	for i, a := range dto.Achievements {
		if err := checkID("achievement", i, a.ID, seen); err != nil {
			return nil, err
		}
		cat.Achievements = append(cat.Achievements, &models.Achievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
		})
	}

	seen = make(map[string]struct{})
	for i, r := range dto.Recommendations.Candidates {
		if err := checkID("recommendation", i, r.ID, seen); err != nil {
			return nil, err
		}
		drinkType, ok := models.ParseDrinkType(r.Type)
		if !ok {
			return nil, fmt.Errorf("recommendation %q type %q: %w", r.ID, r.Type, ErrInvalidCategory)
		}
		cat.Recommendations = append(cat.Recommendations, &models.DailyRecommendation{
			ID: r.ID,
			Drink: models.RecommendedDrink{
				Name:        r.Name,
				Type:        drinkType,
				Description: r.Description,
				Image:       r.Image,
				ABV:         r.ABV,
			},
			Reason: r.Reason,
		})
	}

	if cat.Featured != "" {
		if _, ok := seen[cat.Featured]; !ok {
			return nil, fmt.Errorf("%q: %w", cat.Featured, ErrUnknownFeatured)
		}
	}

	return cat, nil
}

func checkID(kind string, index int, id string, seen map[string]struct{}) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s #%d: %w", kind, index, ErrMissingID)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
	}
	seen[id] = struct{}{}
	return nil
}
