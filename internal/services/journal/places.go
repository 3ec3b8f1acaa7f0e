package journal

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/pourlog/internal/models"
)

// DefaultRelatedLimit caps RelatedArticles when no limit is given
const DefaultRelatedLimit = 3

// ListVenues returns the venues with their check-in state filled in
func (s *service) ListVenues() []*models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		c := v.Clone()
		_, c.CheckedIn = s.checkedIn[v.ID]
		out = append(out, c)
	}
	return out
}

// CheckInVenue toggles membership of the venue in the checked-in set
func (s *service) CheckInVenue(input *CheckInVenueInput) *CheckInVenueOutput {
	if input == nil {
		return &CheckInVenueOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checkedIn[input.VenueID]; ok {
		delete(s.checkedIn, input.VenueID)
		return &CheckInVenueOutput{CheckedIn: false}
	}
	s.checkedIn[input.VenueID] = struct{}{}
	return &CheckInVenueOutput{CheckedIn: true}
}

// ListArticles returns the articles matching the optional category and search text
func (s *service) ListArticles(input *ListArticlesInput) *ListArticlesOutput {
	if input == nil {
		input = &ListArticlesInput{}
	}

	search := fold(strings.TrimSpace(input.Search))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if input.Category != nil && a.Category != *input.Category {
			continue
		}
		if search != "" && !strings.Contains(fold(a.Title), search) && !strings.Contains(fold(a.Summary), search) {
			continue
		}
		out = append(out, s.articleView(a))
	}
	return &ListArticlesOutput{Articles: out}
}

// GetArticle looks up a single article
func (s *service) GetArticle(input *GetArticleInput) *GetArticleOutput {
	if input == nil {
		return &GetArticleOutput{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == input.ID {
			return &GetArticleOutput{Article: s.articleView(a), Found: true}
		}
	}
	return &GetArticleOutput{}
}

// RelatedArticles returns up to Limit other articles in the same category
func (s *service) RelatedArticles(input *RelatedArticlesInput) *RelatedArticlesOutput {
	if input == nil {
		return &RelatedArticlesOutput{Articles: []*models.Article{}}
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var category models.DrinkType
	found := false
	for _, a := range s.articles {
		if a.ID == input.ID {
			category = a.Category
			found = true
			break
		}
	}

	out := make([]*models.Article, 0, limit)
	if !found {
		return &RelatedArticlesOutput{Articles: out}
	}
	for _, a := range s.articles {
		if len(out) == limit {
			break
		}
		if a.ID != input.ID && a.Category == category {
			out = append(out, s.articleView(a))
		}
	}
	return &RelatedArticlesOutput{Articles: out}
}

// MarkArticleAsRead adds the article to the read set. ReadCount is left alone.
func (s *service) MarkArticleAsRead(input *MarkArticleAsReadInput) *MarkArticleAsReadOutput {
	if input == nil {
		return &MarkArticleAsReadOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.read[input.ArticleID]; ok {
		return &MarkArticleAsReadOutput{AlreadyRead: true}
	}
	s.read[input.ArticleID] = struct{}{}
	return &MarkArticleAsReadOutput{}
}

// articleView copies a with its read flag. Callers must hold mu.
func (s *service) articleView(a *models.Article) *models.Article {
	c := a.Clone()
	_, c.Read = s.read[a.ID]
	return c
}

// sortedKeys returns the members of set in ascending order
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
