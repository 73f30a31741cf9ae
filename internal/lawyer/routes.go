package lawyer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, lawyerService LawyerServiceAPI) {
	lawyerController := &LawyerController{Service: lawyerService}

	lawyerGroup := r.Group("/api/lawyers")
	{
		lawyerGroup.GET("/by-zip", lawyerController.GetByZip)
		lawyerGroup.GET("/by-city", lawyerController.GetByCity)
		lawyerGroup.GET("/by-state", lawyerController.GetByState)
		lawyerGroup.GET("/by-name", lawyerController.GetByName)
		lawyerGroup.GET("/search", lawyerController.Search)
		lawyerGroup.GET("/fallback", lawyerController.GetFallback)
		lawyerGroup.GET("/:slug", lawyerController.GetBySlug)
	}

	firmGroup := r.Group("/api/law-firms")
	{
		firmGroup.GET("/by-city", lawyerController.GetFirmsByCity)
		firmGroup.GET("/:slug", lawyerController.GetFirmBySlug)
	}
}
