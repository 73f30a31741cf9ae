package dma

import (
	"gorm.io/gorm"
)

type DMAService struct {
	DB *gorm.DB
}

func NewDMAService(db *gorm.DB) *DMAService {
	return &DMAService{DB: db}
}

func (ds *DMAService) GetAllDMAs() ([]DMA, error) {
	var dmas []DMA
	result := ds.DB.Order("name ASC").Find(&dmas)
	if result.Error != nil {
		return nil, result.Error
	}
	return dmas, nil
}

// GetDMAByID returns a DMA and its zip codes (capped like the resolver's list).
func (ds *DMAService) GetDMAByID(id uint) (*DMA, []string, error) {
	var market DMA
	if err := ds.DB.First(&market, id).Error; err != nil {
		return nil, nil, err
	}

	var codes []string
	err := ds.DB.
		Table("zip_codes").
		Joins("JOIN dma_zip_codes ON dma_zip_codes.zip_code_id = zip_codes.id").
		Where("dma_zip_codes.dma_id = ?", id).
		Order("zip_codes.zip_code ASC").
		Limit(maxDMAZipCodes).
		Pluck("zip_codes.zip_code", &codes).Error
	if err != nil {
		return nil, nil, err
	}
	return &market, codes, nil
}
