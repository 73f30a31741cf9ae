package location

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	maxZipSuggestions   = 8
	maxStateSuggestions = 5
	maxCitySuggestions  = 10
	maxSuggestions      = 12
)

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

func (ls *LocationService) GetStates() ([]State, error) {
	var states []State
	result := ls.DB.Order("name ASC").Find(&states)
	if result.Error != nil {
		return nil, result.Error
	}
	return states, nil
}

func (ls *LocationService) GetStateBySlug(slug string) (*State, error) {
	var state State
	result := ls.DB.Where("slug = ?", slug).First(&state)
	if result.Error != nil {
		return nil, result.Error
	}
	return &state, nil
}

func (ls *LocationService) GetCitiesByState(stateID uint, limit int) ([]City, error) {
	if limit <= 0 {
		limit = 100
	}
	var cities []City
	result := ls.DB.
		Where("state_id = ?", stateID).
		Order("name ASC").
		Limit(limit).
		Find(&cities)
	if result.Error != nil {
		return nil, result.Error
	}
	return cities, nil
}

// Autocomplete suggests zip codes for numeric input, and states plus cities
// for text input. The state and city lookups run concurrently; a failure in
// one branch degrades to zero suggestions from that branch rather than failing
// the request.
func (ls *LocationService) Autocomplete(ctx context.Context, query string) ([]Suggestion, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Suggestion{}, "", nil
	}

	if digitsOnlyPattern.MatchString(query) {
		suggestions := []Suggestion{}
		if len(query) >= 2 {
			var zips []ZipCode
			if err := ls.DB.WithContext(ctx).
				Where("zip_code LIKE ?", query+"%").
				Order("zip_code ASC").
				Limit(maxZipSuggestions).
				Find(&zips).Error; err != nil {
				zap.L().Warn("autocomplete: zip lookup failed", zap.String("query", query), zap.Error(err))
			}
			for _, z := range zips {
				suggestions = append(suggestions, Suggestion{Value: z.Code, Label: z.Code, Type: "zip"})
			}
		}
		return suggestions, "zip", nil
	}

	var (
		stateSuggestions []Suggestion
		citySuggestions  []Suggestion
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var states []State
		pattern := query + "%"
		if err := ls.DB.WithContext(gctx).
			Where("name LIKE ? OR abbreviation LIKE ?", pattern, strings.ToUpper(query)+"%").
			Order("name ASC").
			Limit(maxStateSuggestions).
			Find(&states).Error; err != nil {
			zap.L().Warn("autocomplete: state lookup failed", zap.String("query", query), zap.Error(err))
			return nil
		}
		for _, s := range states {
			stateSuggestions = append(stateSuggestions, Suggestion{
				Value: s.Name,
				Label: s.Name + " (" + s.Abbreviation + ")",
				Type:  "state",
			})
		}
		return nil
	})

	if len(query) >= 2 {
		g.Go(func() error {
			var cities []City
			if err := ls.DB.WithContext(gctx).
				Preload("State").
				Where("name LIKE ?", query+"%").
				Order("name ASC").
				Limit(maxCitySuggestions).
				Find(&cities).Error; err != nil {
				zap.L().Warn("autocomplete: city lookup failed", zap.String("query", query), zap.Error(err))
				return nil
			}
			seen := map[string]bool{}
			for _, c := range cities {
				value, label := c.Name, c.Name
				if c.State != nil {
					value = c.Name + ", " + c.State.Abbreviation
					label = c.Name + ", " + c.State.Name
				}
				if seen[value] {
					continue
				}
				seen[value] = true
				citySuggestions = append(citySuggestions, Suggestion{Value: value, Label: label, Type: "city"})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	detected := ""
	if len(stateSuggestions) > 0 {
		detected = "state"
	}
	if len(citySuggestions) > 0 && len(query) >= 3 {
		detected = "city"
	}

	suggestions := append(stateSuggestions, citySuggestions...)
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Type != suggestions[j].Type {
			return suggestions[i].Type == "state"
		}
		return suggestions[i].Label < suggestions[j].Label
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	return suggestions, detected, nil
}
