package content

import (
	"time"

	"gorm.io/datatypes"
)

type ArticleCategory struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:200;not null" json:"name"`
	Slug string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
}

func (ArticleCategory) TableName() string {
	return "article_categories"
}

type Article struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"size:300;not null" json:"title"`
	Slug        string           `gorm:"size:300;not null;uniqueIndex" json:"slug"`
	Excerpt     string           `gorm:"type:text" json:"excerpt"`
	Content     string           `gorm:"type:text" json:"content"`
	Status      string           `gorm:"size:20;not null;default:'draft';index" json:"status"`
	CategoryID  *uint            `gorm:"column:category_id;index" json:"category_id"`
	Category    *ArticleCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PublishedAt *time.Time       `gorm:"column:published_at" json:"published_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

type Question struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

type Video struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:300;not null" json:"title"`
	Slug        string     `gorm:"size:300;not null;uniqueIndex" json:"slug"`
	URL         string     `gorm:"size:500;not null" json:"url"`
	Status      string     `gorm:"size:20;not null;default:'draft';index" json:"status"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}

type Stage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	OrderIndex  int    `gorm:"column:order_index;not null;default:0" json:"order_index"`
}

func (Stage) TableName() string {
	return "stages"
}

type Emotion struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

func (Emotion) TableName() string {
	return "emotions"
}

// ContentBlock is a schemaless page fragment keyed by component type; Data
// holds whatever the front end needs to render it.
type ContentBlock struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug          string         `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	ComponentType string         `gorm:"column:component_type;size:100;not null;index" json:"component_type"`
	Title         string         `gorm:"size:300" json:"title"`
	Data          datatypes.JSON `gorm:"type:jsonb" json:"data"`
	Active        bool           `gorm:"not null;default:true;index" json:"active"`
	OrderIndex    int            `gorm:"column:order_index;not null;default:0" json:"order_index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}

type SiteSetting struct {
	ID    uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string         `gorm:"size:200;not null;uniqueIndex" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb" json:"value"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
