package content

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, contentService ContentServiceAPI) {
	contentController := &ContentController{Service: contentService}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/articles", contentController.GetArticles)
		apiGroup.GET("/articles/:slug", contentController.GetArticleBySlug)
		apiGroup.GET("/questions", contentController.GetQuestions)
		apiGroup.GET("/videos", contentController.GetVideos)
		apiGroup.GET("/stages", contentController.GetStages)
		apiGroup.GET("/emotions", contentController.GetEmotions)
		apiGroup.GET("/content-blocks", contentController.GetContentBlocks)
		apiGroup.GET("/site-settings", contentController.GetSiteSettings)
	}
}
