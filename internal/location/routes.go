package location

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, locationService LocationServiceAPI) {
	locationController := &LocationController{Service: locationService}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/autocomplete", locationController.Autocomplete)
		apiGroup.GET("/states", locationController.GetStates)
		apiGroup.GET("/states/:slug/cities", locationController.GetCitiesByState)
	}
}
