package content

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service ContentServiceAPI
}

func (cc *ContentController) GetArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	articles, err := cc.Service.GetArticles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (cc *ContentController) GetArticleBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	article, err := cc.Service.GetArticleBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (cc *ContentController) GetQuestions(c *gin.Context) {
	questions, err := cc.Service.GetQuestions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (cc *ContentController) GetVideos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	videos, err := cc.Service.GetVideos(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (cc *ContentController) GetStages(c *gin.Context) {
	stages, err := cc.Service.GetStages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

func (cc *ContentController) GetEmotions(c *gin.Context) {
	emotions, err := cc.Service.GetEmotions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

func (cc *ContentController) GetContentBlocks(c *gin.Context) {
	blocks, err := cc.Service.GetContentBlocks(strings.TrimSpace(c.Query("type")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content_blocks": blocks})
}

func (cc *ContentController) GetSiteSettings(c *gin.Context) {
	var keys []string
	if raw := strings.TrimSpace(c.Query("keys")); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	settings, err := cc.Service.GetSiteSettings(keys)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
