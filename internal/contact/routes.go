package contact

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, contactService ContactServiceAPI) {
	contactController := &ContactController{Service: contactService}

	r.POST("/api/contact", contactController.Submit)
}
