package lawyer

// FirmWithLawyers is a featured-firm card: the firm plus up to three of its
// lawyers.
type FirmWithLawyers struct {
	LawFirm
	Lawyers []Lawyer `json:"lawyers"`
}

const lawyersPerFirmCard = 3

// GetFeaturedFirmsByCity returns verified firms in a city ordered by rating,
// each with a small lawyer sample. Firms with no lawyers are dropped.
func (s *LawyerService) GetFeaturedFirmsByCity(citySlug string, limit int) ([]FirmWithLawyers, error) {
	if limit <= 0 {
		limit = 3
	}

	var firms []LawFirm
	err := s.DB.
		Joins("JOIN cities ON cities.id = law_firms.city_id").
		Where("cities.slug = ? AND law_firms.verified = ?", citySlug, true).
		Order("law_firms.rating DESC").
		Limit(limit).
		Find(&firms).Error
	if err != nil {
		return nil, err
	}

	cards := make([]FirmWithLawyers, 0, len(firms))
	for _, firm := range firms {
		lawyers, err := s.GetLawyersByFirm(firm.ID, lawyersPerFirmCard)
		if err != nil {
			return nil, err
		}
		if len(lawyers) == 0 {
			continue
		}
		cards = append(cards, FirmWithLawyers{LawFirm: firm, Lawyers: lawyers})
	}
	return cards, nil
}

func (s *LawyerService) GetLawFirmBySlug(slug string) (*LawFirm, []Lawyer, error) {
	var firm LawFirm
	if err := s.DB.Where("slug = ?", slug).First(&firm).Error; err != nil {
		return nil, nil, err
	}

	var lawyers []Lawyer
	if err := s.DB.Where("law_firm_id = ?", firm.ID).Order("id ASC").Find(&lawyers).Error; err != nil {
		return nil, nil, err
	}
	return &firm, lawyers, nil
}

func (s *LawyerService) GetLawyersByFirm(firmID uint, limit int) ([]Lawyer, error) {
	if limit <= 0 {
		limit = lawyersPerFirmCard
	}
	var lawyers []Lawyer
	err := s.DB.
		Where("law_firm_id = ?", firmID).
		Order("id ASC").
		Limit(limit).
		Find(&lawyers).Error
	if err != nil {
		return nil, err
	}
	return lawyers, nil
}
