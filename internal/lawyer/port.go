package lawyer

import "context"

type LawyerServiceAPI interface {
	GetLawyersByZip(ctx context.Context, zip string) (*LookupResult, error)
	GetLawyersByCity(ctx context.Context, city, state string) (*LookupResult, error)
	GetLawyersByState(ctx context.Context, state string) (*LookupResult, error)
	GetLawyersByName(ctx context.Context, name, zip string) (*LookupResult, error)
	Search(ctx context.Context, query string) (*LookupResult, error)
	GetLawyerBySlug(slug string) (*Lawyer, error)
	GetFallbackLawyers() ([]Lawyer, error)
	GetFeaturedFirmsByCity(citySlug string, limit int) ([]FirmWithLawyers, error)
	GetLawFirmBySlug(slug string) (*LawFirm, []Lawyer, error)
}
