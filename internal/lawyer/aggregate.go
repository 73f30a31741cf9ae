package lawyer

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// candidateSet deduplicates lawyers by id while preserving first-seen order.
// All aggregation paths return full rows from the same table, so on a repeat
// id the content is identical and last write wins.
type candidateSet struct {
	order []uint
	byID  map[uint]Lawyer
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byID: map[uint]Lawyer{}}
}

func (s *candidateSet) add(lawyers ...Lawyer) {
	for _, l := range lawyers {
		if _, ok := s.byID[l.ID]; !ok {
			s.order = append(s.order, l.ID)
		}
		s.byID[l.ID] = l
	}
}

func (s *candidateSet) lawyers() []Lawyer {
	out := make([]Lawyer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// collectForDMAs unions three join paths: lawyers whose office zip is in the
// market's zip list, lawyers whose firm sits in the market, and lawyers with
// an explicit service-area row for one of the markets. A failed path logs and
// contributes nothing; the other paths still run.
func collectForDMAs(ctx context.Context, db *gorm.DB, dmaIDs []uint, zipCodes []string) []Lawyer {
	set := newCandidateSet()

	if len(zipCodes) > 0 {
		var byOffice []Lawyer
		err := db.WithContext(ctx).
			Preload("LawFirm").
			Where("office_zip_code IN ?", zipCodes).
			Order("id ASC").
			Find(&byOffice).Error
		if err != nil {
			zap.L().Warn("aggregate: office zip path failed", zap.Error(err))
		} else {
			set.add(byOffice...)
		}
	}

	if len(zipCodes) > 0 {
		var firmIDs []uint
		err := db.WithContext(ctx).
			Table("law_firms").
			Where("zip_code IN ?", zipCodes).
			Pluck("id", &firmIDs).Error
		if err != nil {
			zap.L().Warn("aggregate: firm zip path failed", zap.Error(err))
		} else if len(firmIDs) > 0 {
			var byFirm []Lawyer
			err := db.WithContext(ctx).
				Preload("LawFirm").
				Where("law_firm_id IN ?", firmIDs).
				Order("id ASC").
				Find(&byFirm).Error
			if err != nil {
				zap.L().Warn("aggregate: firm lawyer path failed", zap.Error(err))
			} else {
				set.add(byFirm...)
			}
		}
	}

	if len(dmaIDs) > 0 {
		var byServiceArea []Lawyer
		err := db.WithContext(ctx).
			Preload("LawFirm").
			Joins("JOIN lawyer_service_areas ON lawyer_service_areas.lawyer_id = lawyers.id").
			Where("lawyer_service_areas.dma_id IN ?", dmaIDs).
			Order("lawyers.id ASC").
			Find(&byServiceArea).Error
		if err != nil {
			zap.L().Warn("aggregate: service area path failed", zap.Error(err))
		} else {
			set.add(byServiceArea...)
		}
	}

	return set.lawyers()
}
