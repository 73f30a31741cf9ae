package content

import (
	"gorm.io/gorm"
)

const defaultListLimit = 50

type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

func (cs *ContentService) GetArticles(limit int) ([]Article, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var articles []Article
	result := cs.DB.
		Where("status = ?", "published").
		Order("created_at DESC").
		Limit(limit).
		Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}
	return articles, nil
}

func (cs *ContentService) GetArticleBySlug(slug string) (*Article, error) {
	var article Article
	result := cs.DB.
		Preload("Category").
		Where("slug = ? AND status = ?", slug, "published").
		First(&article)
	if result.Error != nil {
		return nil, result.Error
	}
	return &article, nil
}

func (cs *ContentService) GetQuestions() ([]Question, error) {
	var questions []Question
	result := cs.DB.Order("created_at DESC").Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (cs *ContentService) GetVideos(limit int) ([]Video, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var videos []Video
	result := cs.DB.
		Where("status = ?", "published").
		Order("published_at DESC").
		Limit(limit).
		Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}
	return videos, nil
}

func (cs *ContentService) GetStages() ([]Stage, error) {
	var stages []Stage
	result := cs.DB.Order("order_index ASC").Find(&stages)
	if result.Error != nil {
		return nil, result.Error
	}
	return stages, nil
}

func (cs *ContentService) GetEmotions() ([]Emotion, error) {
	var emotions []Emotion
	result := cs.DB.Order("name ASC").Find(&emotions)
	if result.Error != nil {
		return nil, result.Error
	}
	return emotions, nil
}

func (cs *ContentService) GetContentBlocks(componentType string) ([]ContentBlock, error) {
	query := cs.DB.
		Where("active = ?", true).
		Order("component_type ASC").
		Order("order_index ASC")
	if componentType != "" {
		query = query.Where("component_type = ?", componentType)
	}

	var blocks []ContentBlock
	if err := query.Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (cs *ContentService) GetSiteSettings(keys []string) ([]SiteSetting, error) {
	query := cs.DB.Order("key ASC")
	if len(keys) > 0 {
		query = query.Where("key IN ?", keys)
	}

	var settings []SiteSetting
	if err := query.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
