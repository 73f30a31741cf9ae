package subscription

import (
	"sort"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	DB *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db}
}

func (ss *SubscriptionService) GetSubscriptionTypes() ([]SubscriptionType, error) {
	var types []SubscriptionType
	result := ss.DB.Order("sort_order ASC").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}
	return types, nil
}

// GetPlans returns active plans with their features deduplicated by name and
// sorted by feature sort order.
func (ss *SubscriptionService) GetPlans() ([]SubscriptionPlan, error) {
	var plans []SubscriptionPlan
	result := ss.DB.
		Preload("Features").
		Where("active = ?", true).
		Order("sort_order ASC").
		Find(&plans)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range plans {
		plans[i].Features = dedupFeatures(plans[i].Features)
	}
	return plans, nil
}

// GetPlansForDMA returns the plan list with any per-market price overrides
// applied on top of the base prices.
func (ss *SubscriptionService) GetPlansForDMA(dmaID uint) ([]SubscriptionPlan, error) {
	plans, err := ss.GetPlans()
	if err != nil {
		return nil, err
	}

	var overrides []SubscriptionPlanDMAOverride
	err = ss.DB.
		Where("dma_id = ? AND is_active = ?", dmaID, true).
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}

	byPlan := make(map[uint]SubscriptionPlanDMAOverride, len(overrides))
	for _, o := range overrides {
		byPlan[o.PlanID] = o
	}

	for i := range plans {
		o, ok := byPlan[plans[i].ID]
		if !ok {
			continue
		}
		if o.PriceCents != nil {
			plans[i].PriceCents = *o.PriceCents
		}
		if o.PriceDisplay != nil {
			plans[i].PriceDisplay = *o.PriceDisplay
		}
		if o.Description != nil {
			plans[i].Description = *o.Description
		}
	}
	return plans, nil
}

func dedupFeatures(features []SubscriptionPlanFeature) []SubscriptionPlanFeature {
	seen := map[string]bool{}
	unique := make([]SubscriptionPlanFeature, 0, len(features))
	for _, f := range features {
		if seen[f.FeatureName] {
			continue
		}
		seen[f.FeatureName] = true
		unique = append(unique, f)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].SortOrder < unique[j].SortOrder
	})
	return unique
}
