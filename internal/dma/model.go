package dma

import (
	"time"
)

// DMA is a Designated Market Area: a media-market grouping of zip codes used
// as the unit of lawyer-listing and subscription-tier scoping.
type DMA struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Code      int       `gorm:"not null;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DMA) TableName() string {
	return "dmas"
}

// DMAZipCode maps a zip code into a DMA. A zip code belongs to at most one DMA.
type DMAZipCode struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	DMAID     uint `gorm:"column:dma_id;not null;index" json:"dma_id"`
	ZipCodeID uint `gorm:"column:zip_code_id;not null;uniqueIndex" json:"zip_code_id"`
}

func (DMAZipCode) TableName() string {
	return "dma_zip_codes"
}

// Info is the compact DMA representation embedded in lookup responses.
type Info struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code int    `json:"code"`
}

func (d DMA) Info() Info {
	return Info{ID: d.ID, Name: d.Name, Code: d.Code}
}
