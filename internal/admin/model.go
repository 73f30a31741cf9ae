package admin

import "divorce-lawyers-api/internal/dma"

// Request payloads for the back-office CRUD endpoints. Pointer fields
// distinguish "not sent" from an explicit zero value.

type LawyerRequest struct {
	FirstName        string   `json:"first_name" binding:"required"`
	LastName         string   `json:"last_name" binding:"required"`
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Bio              string   `json:"bio"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	PhotoURL         string   `json:"photo_url"`
	BarNumber        string   `json:"bar_number"`
	YearsExperience  *int     `json:"years_experience"`
	OfficeZipCode    string   `json:"office_zip_code"`
	LawFirmID        *uint    `json:"law_firm_id"`
	SubscriptionType string   `json:"subscription_type"`
	Specializations  []string `json:"specializations"`
	Languages        []string `json:"languages"`
	BarAdmissions    []string `json:"bar_admissions"`
	ServiceAreaDMAs  []uint   `json:"service_area_dmas"`
}

type LawFirmRequest struct {
	Name     string   `json:"name" binding:"required"`
	Slug     string   `json:"slug"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Website  string   `json:"website"`
	Rating   *float64 `json:"rating"`
	Verified bool     `json:"verified"`
	Featured bool     `json:"featured"`
	ZipCode  string   `json:"zip_code"`
	CityID   *uint    `json:"city_id"`
}

type DMARequest struct {
	Name string `json:"name" binding:"required"`
	Code int    `json:"code" binding:"required"`
}

type AssignZipCodesRequest struct {
	ZipCodes []string `json:"zip_codes" binding:"required"`
}

type ZipCodeRequest struct {
	ZipCode string `json:"zip_code" binding:"required"`
	CityID  *uint  `json:"city_id"`
}

type SubscriptionTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	SortOrder   int    `json:"sort_order"`
}

type SubscriptionLimitRequest struct {
	LocationType     string `json:"location_type" binding:"required"`
	LocationValue    string `json:"location_value"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
	MaxLawyers       *int   `json:"max_lawyers"`
}

type TierOverrideRequest struct {
	LawyerID         uint   `json:"lawyer_id" binding:"required"`
	DMAID            uint   `json:"dma_id" binding:"required"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
}

type PlanRequest struct {
	Name          string `json:"name" binding:"required"`
	DisplayName   string `json:"display_name" binding:"required"`
	PriceCents    int    `json:"price_cents"`
	PriceDisplay  string `json:"price_display"`
	BillingPeriod string `json:"billing_period"`
	Description   string `json:"description"`
	IsRecommended bool   `json:"is_recommended"`
	SortOrder     int    `json:"sort_order"`
	Active        *bool  `json:"active"`
}

type PlanFeatureRequest struct {
	FeatureName   string `json:"feature_name" binding:"required"`
	FeatureValue  string `json:"feature_value"`
	IsIncluded    bool   `json:"is_included"`
	IsHighlighted bool   `json:"is_highlighted"`
	SortOrder     int    `json:"sort_order"`
}

type PlanDMAOverrideRequest struct {
	DMAID        uint    `json:"dma_id" binding:"required"`
	PriceCents   *int    `json:"price_cents"`
	PriceDisplay *string `json:"price_display"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

type FallbackLawyerRequest struct {
	LawyerID     uint `json:"lawyer_id" binding:"required"`
	DisplayOrder int  `json:"display_order"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LimitsCheckResult is the diagnostic payload of the zip-code limits
// checker: which market a zip resolves to, via which strategy, and the
// effective per-tier caps there. A nil cap means unlimited.
type LimitsCheckResult struct {
	ZipCode  string          `json:"zipCode"`
	DMA      *dma.Info       `json:"dma"`
	Strategy string          `json:"strategy"`
	ZipCount int             `json:"zipCount"`
	Caps     map[string]*int `json:"caps"`
}
