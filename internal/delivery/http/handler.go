package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
	"github.com/cdelavallette-lang/healthapp/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis *usecase.AnalysisService
	recipes  domain.RecipeRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis *usecase.AnalysisService, recipes domain.RecipeRepository) *Handler {
	return &Handler{
		analysis: analysis,
		recipes:  recipes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrient-core",
		"version": "1.0.0",
	})
}

// planEntryRequest references a stored recipe or carries one inline.
type planEntryRequest struct {
	RecipeID string         `json:"recipeId,omitempty"`
	Recipe   *domain.Recipe `json:"recipe,omitempty"`
	Servings float64        `json:"servings"`
}

type mealPlanRequest struct {
	Entries []planEntryRequest `json:"entries" binding:"required"`
	Days    int                `json:"days"`
}

// AnalyzeMealPlan aggregates a meal plan, applies bioavailability rules
// and reports interaction findings.
func (h *Handler) AnalyzeMealPlan(c *gin.Context) {
	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Days == 0 {
		req.Days = 1
	}

	entries := make([]usecase.PlanEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		var recipe *domain.Recipe
		switch {
		case e.Recipe != nil:
			recipe = e.Recipe
		case e.RecipeID != "":
			stored, err := h.recipes.GetByID(c.Request.Context(), e.RecipeID)
			if err != nil {
				respondError(c, err)
				return
			}
			recipe = stored
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "each entry needs a recipe or a recipeId"})
			return
		}
		entries = append(entries, usecase.PlanEntry{Recipe: *recipe, Servings: e.Servings})
	}

	analysis, err := h.analysis.AnalyzeMealPlan(entries, req.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// biomarkerRequest accepts lab values as strings so absent or unparseable
// entries can be dropped instead of rejected.
type biomarkerRequest struct {
	Readings map[string]string `json:"readings" binding:"required"`
	// Order fixes the evaluation order of the readings; markers not listed
	// are appended alphabetically so identical inputs give identical output.
	Order []string `json:"order,omitempty"`
}

// EvaluateBiomarkers classifies readings and derives recommendations.
func (h *Handler) EvaluateBiomarkers(c *gin.Context) {
	var req biomarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	readings := orderedReadings(req)
	result := h.analysis.EvaluateBiomarkers(readings)
	c.JSON(http.StatusOK, result)
}

// CreateRecipe stores a recipe, assigning an id when absent.
func (h *Handler) CreateRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	for key, value := range recipe.PerServing {
		if value < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "negative amount for nutrient " + string(key)})
			return
		}
	}
	if err := h.recipes.Save(c.Request.Context(), &recipe); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// GetRecipe returns one stored recipe.
func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns all stored recipes.
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// DeleteRecipe removes a stored recipe.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
