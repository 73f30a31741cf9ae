package subscription

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, subscriptionService SubscriptionServiceAPI) {
	subscriptionController := &SubscriptionController{Service: subscriptionService}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/subscription-types", subscriptionController.GetSubscriptionTypes)
		apiGroup.GET("/subscription-plans", subscriptionController.GetPlans)
		apiGroup.GET("/subscription-plans/for-dma", subscriptionController.GetPlansForDMA)
	}
}
