package subscription

type SubscriptionServiceAPI interface {
	GetSubscriptionTypes() ([]SubscriptionType, error)
	GetPlans() ([]SubscriptionPlan, error)
	GetPlansForDMA(dmaID uint) ([]SubscriptionPlan, error)
}
