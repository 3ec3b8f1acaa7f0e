package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/render"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// ListVenues returns every venue with its check-in state
func (a *API) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"venues": a.journal.ListVenues()})
}

// CheckInVenue toggles the check-in state of a known venue
func (a *API) CheckInVenue(c *gin.Context) {
	id := c.Param("id")
	if !a.venueExists(id) {
		respondError(c, http.StatusNotFound, "venue not found")
		return
	}

	out := a.journal.CheckInVenue(&journal.CheckInVenueInput{VenueID: id})
	c.JSON(http.StatusOK, gin.H{"checkedIn": out.CheckedIn})
}

func (a *API) venueExists(id string) bool {
	for _, v := range a.journal.ListVenues() {
		if v.ID == id {
			return true
		}
	}
	return false
}

// ListArticles returns articles narrowed by the category and q query parameters
func (a *API) ListArticles(c *gin.Context) {
	input := &journal.ListArticlesInput{Search: c.Query("q")}
	if raw := c.Query("category"); raw != "" {
		category, ok := models.ParseDrinkType(raw)
		if !ok {
			respondError(c, http.StatusBadRequest, "invalid category")
			return
		}
		input.Category = &category
	}

	out := a.journal.ListArticles(input)
	c.JSON(http.StatusOK, gin.H{"articles": out.Articles})
}

// GetArticle returns an article with its rendered body and related articles
func (a *API) GetArticle(c *gin.Context) {
	id := c.Param("id")
	out := a.journal.GetArticle(&journal.GetArticleInput{ID: id})
	if !out.Found {
		respondError(c, http.StatusNotFound, "article not found")
		return
	}

	body, err := render.Markdown(out.Article.Content)
	if err != nil {
		a.logger.Error("api.render_failed", "article", id, "error", err)
		respondError(c, http.StatusInternalServerError, "failed to render article")
		return
	}

	related := a.journal.RelatedArticles(&journal.RelatedArticlesInput{ID: id})
	c.JSON(http.StatusOK, gin.H{
		"article": out.Article,
		"html":    string(body),
		"related": related.Articles,
	})
}

// MarkArticleRead adds a known article to the read set
func (a *API) MarkArticleRead(c *gin.Context) {
	id := c.Param("id")
	if !a.journal.GetArticle(&journal.GetArticleInput{ID: id}).Found {
		respondError(c, http.StatusNotFound, "article not found")
		return
	}

	out := a.journal.MarkArticleAsRead(&journal.MarkArticleAsReadInput{ArticleID: id})
	c.JSON(http.StatusOK, gin.H{"alreadyRead": out.AlreadyRead})
}
