package admin

import (
	"context"

	"divorce-lawyers-api/internal/contact"
	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/lawyer"
	"divorce-lawyers-api/internal/location"
	"divorce-lawyers-api/internal/subscription"
)

type AdminServiceAPI interface {
	ListLawyers(search string, page, pageSize int) ([]lawyer.Lawyer, int64, error)
	CreateLawyer(req LawyerRequest) (*lawyer.Lawyer, error)
	UpdateLawyer(id uint, req LawyerRequest) (*lawyer.Lawyer, error)
	DeleteLawyer(id uint) error
	ExportLawyersXLSX() (string, []byte, error)
	ListFallbackLawyers() ([]lawyer.FallbackLawyer, error)
	SetFallbackLawyers(entries []FallbackLawyerRequest) ([]lawyer.FallbackLawyer, error)

	ListLawFirms(search string) ([]lawyer.LawFirm, error)
	CreateLawFirm(req LawFirmRequest) (*lawyer.LawFirm, error)
	UpdateLawFirm(id uint, req LawFirmRequest) (*lawyer.LawFirm, error)
	DeleteLawFirm(id uint) error

	CreateDMA(req DMARequest) (*dma.DMA, error)
	UpdateDMA(id uint, req DMARequest) (*dma.DMA, error)
	DeleteDMA(id uint) error
	AssignZipCodes(dmaID uint, zips []string) (int, error)
	RemoveZipCode(dmaID uint, code string) error

	ListZipCodes(search string, page, pageSize int) ([]location.ZipCode, int64, error)
	CreateZipCode(req ZipCodeRequest) (*location.ZipCode, error)
	DeleteZipCode(id uint) error

	CreateSubscriptionType(req SubscriptionTypeRequest) (*subscription.SubscriptionType, error)
	UpdateSubscriptionType(id uint, req SubscriptionTypeRequest) (*subscription.SubscriptionType, error)
	DeleteSubscriptionType(id uint) error

	ListSubscriptionLimits() ([]subscription.SubscriptionLimit, error)
	UpsertSubscriptionLimit(req SubscriptionLimitRequest) (*subscription.SubscriptionLimit, error)
	DeleteSubscriptionLimit(id uint) error

	ListTierOverrides(lawyerID uint) ([]subscription.LawyerDMASubscription, error)
	UpsertTierOverride(req TierOverrideRequest) (*subscription.LawyerDMASubscription, error)
	DeleteTierOverride(id uint) error

	ListPlans() ([]subscription.SubscriptionPlan, error)
	CreatePlan(req PlanRequest) (*subscription.SubscriptionPlan, error)
	UpdatePlan(id uint, req PlanRequest) (*subscription.SubscriptionPlan, error)
	DeletePlan(id uint) error
	SetPlanFeatures(planID uint, features []PlanFeatureRequest) ([]subscription.SubscriptionPlanFeature, error)
	UpsertPlanDMAOverride(planID uint, req PlanDMAOverrideRequest) (*subscription.SubscriptionPlanDMAOverride, error)
	DeletePlanDMAOverride(id uint) error

	ListContactSubmissions(status string, from, to *string) ([]contact.ContactSubmission, error)
	UpdateContactStatus(id uint, status string) error

	CheckLimits(ctx context.Context, zip string) (*LimitsCheckResult, error)
}
