package geocode

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type GeocodeController struct {
	Client *Client
}

// Geocode is a thin passthrough for the front end's map widgets.
func (gc *GeocodeController) Geocode(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	coords, err := gc.Client.Search(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
		return
	}
	if coords == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no results"})
		return
	}

	c.JSON(http.StatusOK, coords)
}

func RegisterRoutes(r *gin.Engine, client *Client) {
	geocodeController := &GeocodeController{Client: client}

	r.GET("/api/geocode", geocodeController.Geocode)
}
