package subscription

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Service SubscriptionServiceAPI
}

func (sc *SubscriptionController) GetSubscriptionTypes(c *gin.Context) {
	types, err := sc.Service.GetSubscriptionTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription_types": types})
}

func (sc *SubscriptionController) GetPlans(c *gin.Context) {
	plans, err := sc.Service.GetPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (sc *SubscriptionController) GetPlansForDMA(c *gin.Context) {
	dmaID, err := strconv.ParseUint(c.Query("dmaId"), 10, 64)
	if err != nil || dmaID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid dmaId is required"})
		return
	}

	plans, err := sc.Service.GetPlansForDMA(uint(dmaID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
