package location

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	Service LocationServiceAPI
}

func (lc *LocationController) GetStates(c *gin.Context) {
	states, err := lc.Service.GetStates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

func (lc *LocationController) GetCitiesByState(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state slug is required"})
		return
	}

	state, err := lc.Service.GetStateBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "state not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	cities, err := lc.Service.GetCitiesByState(state.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state, "cities": cities})
}

func (lc *LocationController) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	suggestions, detected, err := lc.Service.Autocomplete(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"suggestions": []Suggestion{}, "type": nil, "error": err.Error()})
		return
	}

	c.Header("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
	var detectedOut any
	if detected != "" {
		detectedOut = detected
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "type": detectedOut})
}
