package dma

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type DMAController struct {
	Service DMAServiceAPI
}

func (dc *DMAController) GetAllDMAs(c *gin.Context) {
	dmas, err := dc.Service.GetAllDMAs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dmas": dmas})
}

func (dc *DMAController) GetDMAByID(c *gin.Context) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid dma id is required"})
		return
	}

	market, zipCodes, err := dc.Service.GetDMAByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dma not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dma": market, "zip_codes": zipCodes})
}
