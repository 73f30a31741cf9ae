package subscription

import (
	"time"
)

// SubscriptionType is a named service level. Lower SortOrder is the better
// tier and is listed first.
type SubscriptionType struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName string    `gorm:"size:200;not null" json:"display_name"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SubscriptionType) TableName() string {
	return "subscription_types"
}

// SubscriptionLimit caps how many lawyers of a tier are shown. LocationType
// is "global" for the default row or "dma" with LocationValue holding the DMA
// id. A nil MaxLawyers means unlimited.
type SubscriptionLimit struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationType     string    `gorm:"size:20;not null;index:idx_sub_limits_loc" json:"location_type"`
	LocationValue    string    `gorm:"size:100;not null;default:'';index:idx_sub_limits_loc" json:"location_value"`
	SubscriptionType string    `gorm:"size:100;not null;index:idx_sub_limits_loc" json:"subscription_type"`
	MaxLawyers       *int      `gorm:"column:max_lawyers" json:"max_lawyers"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SubscriptionLimit) TableName() string {
	return "subscription_limits"
}

// LawyerDMASubscription overrides a lawyer's tier inside one market.
type LawyerDMASubscription struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LawyerID         uint      `gorm:"column:lawyer_id;not null;uniqueIndex:uq_lawyer_dma_sub" json:"lawyer_id"`
	DMAID            uint      `gorm:"column:dma_id;not null;uniqueIndex:uq_lawyer_dma_sub" json:"dma_id"`
	SubscriptionType string    `gorm:"size:100;not null" json:"subscription_type"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (LawyerDMASubscription) TableName() string {
	return "lawyer_dma_subscriptions"
}

type SubscriptionPlan struct {
	ID            uint                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string                    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName   string                    `gorm:"size:200;not null" json:"display_name"`
	PriceCents    int                       `gorm:"not null;default:0" json:"price_cents"`
	PriceDisplay  string                    `gorm:"size:50;not null;default:'$0'" json:"price_display"`
	BillingPeriod string                    `gorm:"size:20;not null;default:'month'" json:"billing_period"`
	Description   string                    `gorm:"type:text" json:"description"`
	IsRecommended bool                      `gorm:"not null;default:false" json:"is_recommended"`
	SortOrder     int                       `gorm:"not null;default:0" json:"sort_order"`
	Active        bool                      `gorm:"not null;default:true" json:"active"`
	Features      []SubscriptionPlanFeature `gorm:"foreignKey:PlanID" json:"features"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type SubscriptionPlanFeature struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanID        uint      `gorm:"column:plan_id;not null;index" json:"plan_id"`
	FeatureName   string    `gorm:"size:200;not null" json:"feature_name"`
	FeatureValue  string    `gorm:"size:200" json:"feature_value"`
	IsIncluded    bool      `gorm:"not null;default:true" json:"is_included"`
	IsHighlighted bool      `gorm:"not null;default:false" json:"is_highlighted"`
	SortOrder     int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func (SubscriptionPlanFeature) TableName() string {
	return "subscription_plan_features"
}

// SubscriptionPlanDMAOverride reprices a plan inside one market.
type SubscriptionPlanDMAOverride struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanID       uint      `gorm:"column:plan_id;not null;uniqueIndex:uq_plan_dma_override" json:"plan_id"`
	DMAID        uint      `gorm:"column:dma_id;not null;uniqueIndex:uq_plan_dma_override" json:"dma_id"`
	PriceCents   *int      `gorm:"column:price_cents" json:"price_cents"`
	PriceDisplay *string   `gorm:"column:price_display;size:50" json:"price_display"`
	Description  *string   `gorm:"column:description;type:text" json:"description"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SubscriptionPlanDMAOverride) TableName() string {
	return "subscription_plan_dma_overrides"
}
