package lawyer

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var zipFormat = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

type LawyerController struct {
	Service LawyerServiceAPI
}

func (lc *LawyerController) GetByZip(c *gin.Context) {
	zip := strings.TrimSpace(c.Query("zipCode"))
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Zip code is required"})
		return
	}
	if !zipFormat.MatchString(zip) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zip code format"})
		return
	}

	result, err := lc.Service.GetLawyersByZip(c.Request.Context(), zip[:5])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (lc *LawyerController) GetByCity(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City is required"})
		return
	}
	state := strings.TrimSpace(c.Query("state"))

	result, err := lc.Service.GetLawyersByCity(c.Request.Context(), city, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (lc *LawyerController) GetByState(c *gin.Context) {
	state := strings.TrimSpace(c.Query("state"))
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State is required"})
		return
	}

	result, err := lc.Service.GetLawyersByState(c.Request.Context(), state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (lc *LawyerController) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lawyer name is required"})
		return
	}
	zip := strings.TrimSpace(c.Query("zipCode"))
	if zip != "" && !zipFormat.MatchString(zip) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zip code format"})
		return
	}
	if zip != "" {
		zip = zip[:5]
	}

	result, err := lc.Service.GetLawyersByName(c.Request.Context(), name, zip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (lc *LawyerController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"lawyers": []Lawyer{}})
		return
	}

	result, err := lc.Service.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (lc *LawyerController) GetFallback(c *gin.Context) {
	lawyers, err := lc.Service.GetFallbackLawyers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyers": lawyers})
}

func (lc *LawyerController) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lawyer slug is required"})
		return
	}

	l, err := lc.Service.GetLawyerBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lawyer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyer": l})
}

func (lc *LawyerController) GetFirmsByCity(c *gin.Context) {
	citySlug := strings.TrimSpace(c.Query("city"))
	if citySlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	firms, err := lc.Service.GetFeaturedFirmsByCity(citySlug, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"firms": firms})
}

func (lc *LawyerController) GetFirmBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firm slug is required"})
		return
	}

	firm, lawyers, err := lc.Service.GetLawFirmBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "law firm not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"firm": firm, "lawyers": lawyers})
}
