package dma

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dmaService DMAServiceAPI) {
	dmaController := &DMAController{Service: dmaService}

	apiGroup := r.Group("/api/dmas")
	{
		apiGroup.GET("", dmaController.GetAllDMAs)
		apiGroup.GET("/:id", dmaController.GetDMAByID)
	}
}
