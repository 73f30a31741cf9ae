package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Service ContactServiceAPI
}

func (cc *ContactController) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := cc.Service.Submit(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission received",
		"submission": submission,
	})
}
