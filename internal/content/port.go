package content

type ContentServiceAPI interface {
	GetArticles(limit int) ([]Article, error)
	GetArticleBySlug(slug string) (*Article, error)
	GetQuestions() ([]Question, error)
	GetVideos(limit int) ([]Video, error)
	GetStages() ([]Stage, error)
	GetEmotions() ([]Emotion, error)
	GetContentBlocks(componentType string) ([]ContentBlock, error)
	GetSiteSettings(keys []string) ([]SiteSetting, error)
}
