package lawyer

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/location"
	"divorce-lawyers-api/internal/subscription"
)

type LawyerService struct {
	DB       *gorm.DB
	Resolver *dma.Resolver
	Ranker   *subscription.Ranker
}

func NewLawyerService(db *gorm.DB, resolver *dma.Resolver, ranker *subscription.Ranker) *LawyerService {
	return &LawyerService{DB: db, Resolver: resolver, Ranker: ranker}
}

// GetLawyersByZip resolves the zip's market and returns the tier-ranked
// lawyer list for it. When no market can be resolved the search degrades to
// zip-prefix matching and finally to exact-zip-only matching, both without
// market scoping (DMA is nil in the result).
func (s *LawyerService) GetLawyersByZip(ctx context.Context, zip string) (*LookupResult, error) {
	resolved, err := s.Resolver.Resolve(ctx, zip)
	if err != nil {
		zap.L().Warn("lawyers by zip: resolve failed", zap.String("zip", zip), zap.Error(err))
	}

	if resolved != nil {
		candidates := collectForDMAs(ctx, s.DB, []uint{resolved.DMA.ID}, resolved.ZipCodes)
		info := resolved.DMA.Info()
		return s.buildResult(ctx, candidates, []uint{resolved.DMA.ID}, &info), nil
	}

	candidates := s.collectByZipPrefix(ctx, zip)
	if len(candidates) == 0 {
		candidates = s.collectByExactZip(ctx, zip)
	}
	return s.buildResult(ctx, candidates, nil, nil), nil
}

// GetLawyersByCity resolves the city's market through its zip codes and runs
// the same aggregation. Cities without any market mapping fall back to a
// direct city match on offices and firms.
func (s *LawyerService) GetLawyersByCity(ctx context.Context, city, state string) (*LookupResult, error) {
	resolved, err := s.Resolver.ResolveForCity(ctx, city, state)
	if err != nil {
		zap.L().Warn("lawyers by city: resolve failed", zap.String("city", city), zap.Error(err))
	}

	if resolved != nil {
		candidates := collectForDMAs(ctx, s.DB, []uint{resolved.DMA.ID}, resolved.ZipCodes)
		info := resolved.DMA.Info()
		return s.buildResult(ctx, candidates, []uint{resolved.DMA.ID}, &info), nil
	}

	candidates := s.collectByCityDirect(ctx, city, state)
	return s.buildResult(ctx, candidates, nil, nil), nil
}

// GetLawyersByState aggregates across every market the state touches. The
// result's DMA field is set only when the state maps to exactly one market.
func (s *LawyerService) GetLawyersByState(ctx context.Context, state string) (*LookupResult, error) {
	var stateRow location.State
	err := s.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) OR abbreviation = ?", state, strings.ToUpper(strings.TrimSpace(state))).
		First(&stateRow).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.buildResult(ctx, nil, nil, nil), nil
		}
		return nil, err
	}

	resolved, err := s.Resolver.ResolveForState(ctx, stateRow.ID)
	if err != nil {
		zap.L().Warn("lawyers by state: resolve failed", zap.String("state", state), zap.Error(err))
	}

	if len(resolved) == 0 {
		candidates := s.collectByStateDirect(ctx, stateRow.ID)
		return s.buildResult(ctx, candidates, nil, nil), nil
	}

	dmaIDs := make([]uint, 0, len(resolved))
	var zipCodes []string
	seenZip := map[string]bool{}
	for _, rd := range resolved {
		dmaIDs = append(dmaIDs, rd.DMA.ID)
		for _, z := range rd.ZipCodes {
			if !seenZip[z] {
				seenZip[z] = true
				zipCodes = append(zipCodes, z)
			}
		}
	}

	candidates := collectForDMAs(ctx, s.DB, dmaIDs, zipCodes)

	var info *dma.Info
	if len(resolved) == 1 {
		i := resolved[0].DMA.Info()
		info = &i
	}
	return s.buildResult(ctx, candidates, dmaIDs, info), nil
}

// GetLawyersByName searches lawyers by name. A zip code, when given, supplies
// the market context used for tier overrides and the DMA in the response.
func (s *LawyerService) GetLawyersByName(ctx context.Context, name, zip string) (*LookupResult, error) {
	var dmaIDs []uint
	var info *dma.Info
	if zip != "" {
		resolved, err := s.Resolver.Resolve(ctx, zip)
		if err != nil {
			zap.L().Warn("lawyers by name: resolve failed", zap.String("zip", zip), zap.Error(err))
		}
		if resolved != nil {
			dmaIDs = []uint{resolved.DMA.ID}
			i := resolved.DMA.Info()
			info = &i
		}
	}

	pattern := "%" + strings.ToLower(strings.TrimSpace(name)) + "%"
	var matches []Lawyer
	err := s.DB.WithContext(ctx).
		Preload("LawFirm").
		Where("LOWER(first_name || ' ' || last_name) LIKE ?", pattern).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		zap.L().Warn("lawyers by name: query failed", zap.String("name", name), zap.Error(err))
		matches = nil
	}

	return s.buildResult(ctx, matches, dmaIDs, info), nil
}

// Search classifies a free-text query and dispatches to the matching lookup.
// A lawyer-name classification tries a city search first: multi-word city
// names look like person names to the classifier.
func (s *LawyerService) Search(ctx context.Context, query string) (*LookupResult, error) {
	classified := location.Classify(query)

	switch classified.Kind {
	case location.KindZip:
		return s.GetLawyersByZip(ctx, classified.ZipCode)
	case location.KindState:
		return s.GetLawyersByState(ctx, classified.State)
	case location.KindCity:
		return s.GetLawyersByCity(ctx, classified.City, classified.State)
	default:
		result, err := s.GetLawyersByCity(ctx, strings.TrimSpace(query), "")
		if err == nil && result != nil && len(result.Lawyers) > 0 {
			return result, nil
		}
		return s.GetLawyersByName(ctx, query, "")
	}
}

// GetFallbackLawyers returns the curated list served when a location lookup
// comes back empty. Inactive entries are skipped.
func (s *LawyerService) GetFallbackLawyers() ([]Lawyer, error) {
	var lawyers []Lawyer
	err := s.DB.
		Preload("LawFirm").
		Joins("JOIN fallback_lawyers ON fallback_lawyers.lawyer_id = lawyers.id").
		Where("fallback_lawyers.active = ?", true).
		Order("fallback_lawyers.display_order ASC").
		Find(&lawyers).Error
	if err != nil {
		return nil, err
	}
	return lawyers, nil
}

func (s *LawyerService) GetLawyerBySlug(slug string) (*Lawyer, error) {
	var l Lawyer
	err := s.DB.Preload("LawFirm").Where("slug = ?", slug).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// collectByZipPrefix is the last-resort prefix search, used only when no
// market resolved. Prefix matching is approximate: adjacent but unrelated
// markets can share a 3-digit prefix, and scanning by prefix does not scale.
// Kept as a deliberately degraded mode.
func (s *LawyerService) collectByZipPrefix(ctx context.Context, zip string) []Lawyer {
	if len(zip) < 3 {
		return nil
	}
	prefix := zip[:3] + "%"
	zap.L().Warn("lawyers by zip: falling back to prefix search (approximate, not scalable)",
		zap.String("zip", zip),
		zap.String("prefix", zip[:3]),
	)

	set := newCandidateSet()

	var byOffice []Lawyer
	err := s.DB.WithContext(ctx).
		Preload("LawFirm").
		Where("office_zip_code LIKE ?", prefix).
		Order("id ASC").
		Find(&byOffice).Error
	if err != nil {
		zap.L().Warn("lawyers by zip: prefix office query failed", zap.Error(err))
	} else {
		set.add(byOffice...)
	}

	var firmIDs []uint
	err = s.DB.WithContext(ctx).
		Table("law_firms").
		Where("zip_code LIKE ?", prefix).
		Pluck("id", &firmIDs).Error
	if err != nil {
		zap.L().Warn("lawyers by zip: prefix firm query failed", zap.Error(err))
	} else if len(firmIDs) > 0 {
		var byFirm []Lawyer
		err := s.DB.WithContext(ctx).
			Preload("LawFirm").
			Where("law_firm_id IN ?", firmIDs).
			Order("id ASC").
			Find(&byFirm).Error
		if err != nil {
			zap.L().Warn("lawyers by zip: prefix firm lawyers query failed", zap.Error(err))
		} else {
			set.add(byFirm...)
		}
	}

	return set.lawyers()
}

func (s *LawyerService) collectByExactZip(ctx context.Context, zip string) []Lawyer {
	var matches []Lawyer
	err := s.DB.WithContext(ctx).
		Preload("LawFirm").
		Where("office_zip_code = ?", zip).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		zap.L().Warn("lawyers by zip: exact zip query failed", zap.String("zip", zip), zap.Error(err))
		return nil
	}
	return matches
}

func (s *LawyerService) collectByCityDirect(ctx context.Context, city, state string) []Lawyer {
	query := s.DB.WithContext(ctx).
		Table("law_firms").
		Joins("JOIN cities ON cities.id = law_firms.city_id").
		Where("LOWER(cities.name) = LOWER(?)", city)
	if state != "" {
		query = query.
			Joins("JOIN states ON states.id = cities.state_id").
			Where("states.abbreviation = ?", strings.ToUpper(state))
	}

	var firmIDs []uint
	if err := query.Pluck("law_firms.id", &firmIDs).Error; err != nil {
		zap.L().Warn("lawyers by city: firm lookup failed", zap.String("city", city), zap.Error(err))
		return nil
	}
	if len(firmIDs) == 0 {
		return nil
	}

	var matches []Lawyer
	err := s.DB.WithContext(ctx).
		Preload("LawFirm").
		Where("law_firm_id IN ?", firmIDs).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		zap.L().Warn("lawyers by city: lawyer lookup failed", zap.String("city", city), zap.Error(err))
		return nil
	}
	return matches
}

func (s *LawyerService) collectByStateDirect(ctx context.Context, stateID uint) []Lawyer {
	var firmIDs []uint
	err := s.DB.WithContext(ctx).
		Table("law_firms").
		Joins("JOIN cities ON cities.id = law_firms.city_id").
		Where("cities.state_id = ?", stateID).
		Pluck("law_firms.id", &firmIDs).Error
	if err != nil {
		zap.L().Warn("lawyers by state: firm lookup failed", zap.Uint("state_id", stateID), zap.Error(err))
		return nil
	}
	if len(firmIDs) == 0 {
		return nil
	}

	var matches []Lawyer
	err = s.DB.WithContext(ctx).
		Preload("LawFirm").
		Where("law_firm_id IN ?", firmIDs).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		zap.L().Warn("lawyers by state: lawyer lookup failed", zap.Uint("state_id", stateID), zap.Error(err))
		return nil
	}
	return matches
}

// buildResult runs the subscription ranker over the aggregated candidates and
// shapes the shared lookup payload. Works for empty candidate sets too: the
// caller always gets non-nil lawyer and group containers.
func (s *LawyerService) buildResult(ctx context.Context, candidates []Lawyer, dmaIDs []uint, info *dma.Info) *LookupResult {
	rankCandidates := make([]subscription.Candidate, 0, len(candidates))
	byID := make(map[uint]Lawyer, len(candidates))
	for _, l := range candidates {
		rankCandidates = append(rankCandidates, subscription.Candidate{ID: l.ID, DefaultTier: l.SubscriptionType})
		byID[l.ID] = l
	}

	outcome := s.Ranker.Rank(ctx, rankCandidates, dmaIDs)

	ordered := make([]Lawyer, 0, len(outcome.OrderedIDs))
	for _, id := range outcome.OrderedIDs {
		ordered = append(ordered, byID[id])
	}

	groups := make(map[string][]Lawyer, len(outcome.Groups))
	for tier, ids := range outcome.Groups {
		tierLawyers := make([]Lawyer, 0, len(ids))
		for _, id := range ids {
			tierLawyers = append(tierLawyers, byID[id])
		}
		groups[tier] = tierLawyers
	}

	return &LookupResult{
		Lawyers:               ordered,
		GroupedBySubscription: groups,
		DMA:                   info,
		SubscriptionTypes:     outcome.Types,
	}
}
