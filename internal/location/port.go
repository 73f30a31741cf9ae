package location

import "context"

type LocationServiceAPI interface {
	GetStates() ([]State, error)
	GetStateBySlug(slug string) (*State, error)
	GetCitiesByState(stateID uint, limit int) ([]City, error)
	Autocomplete(ctx context.Context, query string) ([]Suggestion, string, error)
}
