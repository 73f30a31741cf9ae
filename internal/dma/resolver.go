package dma

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"divorce-lawyers-api/internal/geocode"
	"divorce-lawyers-api/internal/location"
)

// maxDMAZipCodes bounds the zip list attached to a resolved DMA. Large DMAs
// get truncated, never rejected; the bound tracks the upstream query-parameter
// limit on IN-list size.
const maxDMAZipCodes = 1000

// maxPrefixScanRows bounds the broad neighbor scan.
const maxPrefixScanRows = 100

// Geocoder is the slice of the geocoding client the resolver needs.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Coordinates, error)
	SearchCity(ctx context.Context, city, stateAbbr string) (*geocode.CityResult, error)
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// ResolvedDMA is a successful zip→DMA resolution: the market, its full zip
// list (capped), and which strategy produced the match.
type ResolvedDMA struct {
	DMA      DMA
	ZipCodes []string
	Strategy string
}

type Resolver struct {
	DB       *gorm.DB
	Geocoder Geocoder
}

func NewResolver(db *gorm.DB, geocoder Geocoder) *Resolver {
	return &Resolver{DB: db, Geocoder: geocoder}
}

var fiveDigitZip = regexp.MustCompile(`^\d{5}$`)

type strategy struct {
	name string
	fn   func(ctx context.Context, zip string) (*ResolvedDMA, error)
}

// Resolve finds the DMA for a zip code, trying each strategy in order and
// stopping at the first match. A strategy error is logged and treated the same
// as "no match" so later strategies still run. Returns (nil, nil) when no
// strategy succeeds; callers then fall back to non-DMA-scoped lawyer queries.
func (r *Resolver) Resolve(ctx context.Context, zip string) (*ResolvedDMA, error) {
	zip = strings.TrimSpace(zip)
	if len(zip) > 5 {
		zip = zip[:5]
	}
	if !fiveDigitZip.MatchString(zip) {
		return nil, nil
	}

	attempt := &resolveAttempt{resolver: r}
	strategies := []strategy{
		{"direct", r.resolveDirect},
		{"heuristic_neighbor", r.resolveHeuristicNeighbors},
		{"prefix_scan", r.resolvePrefixScan},
		{"cross_reference", r.resolveCrossReference},
		{"geocode", attempt.resolveGeocode},
		{"nearest_city", attempt.resolveNearestCity},
	}

	for _, s := range strategies {
		resolved, err := s.fn(ctx, zip)
		if err != nil {
			zap.L().Warn("dma resolve: strategy failed",
				zap.String("zip", zip),
				zap.String("strategy", s.name),
				zap.Error(err),
			)
			continue
		}
		if resolved != nil {
			resolved.Strategy = s.name
			zap.L().Info("dma resolved",
				zap.String("zip", zip),
				zap.String("strategy", s.name),
				zap.String("dma", resolved.DMA.Name),
				zap.Int("dma_code", resolved.DMA.Code),
				zap.Int("zip_count", len(resolved.ZipCodes)),
			)
			return resolved, nil
		}
	}

	zap.L().Warn("dma resolve: no strategy matched", zap.String("zip", zip))
	return nil, nil
}

// resolveDirect matches a zip code that exists in the zip table with a DMA
// mapping.
func (r *Resolver) resolveDirect(ctx context.Context, zip string) (*ResolvedDMA, error) {
	var zipRow location.ZipCode
	err := r.DB.WithContext(ctx).Where("zip_code = ?", zip).First(&zipRow).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var mapping DMAZipCode
	err = r.DB.WithContext(ctx).Where("zip_code_id = ?", zipRow.ID).First(&mapping).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.loadResolved(ctx, mapping.DMAID)
}

// resolveHeuristicNeighbors guesses commonly populated sibling zip codes on
// the same 3-digit prefix.
func (r *Resolver) resolveHeuristicNeighbors(ctx context.Context, zip string) (*ResolvedDMA, error) {
	prefix := zip[:3]
	for _, suffix := range []string{"09", "01", "02"} {
		candidate := prefix + suffix
		if candidate == zip {
			continue
		}
		resolved, err := r.resolveDirect(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			return resolved, nil
		}
	}
	return nil, nil
}

// resolvePrefixScan walks every known zip sharing the 3-digit prefix, capped,
// and returns the first one with a DMA mapping.
func (r *Resolver) resolvePrefixScan(ctx context.Context, zip string) (*ResolvedDMA, error) {
	var zips []location.ZipCode
	err := r.DB.WithContext(ctx).
		Where("zip_code LIKE ?", zip[:3]+"%").
		Order("zip_code ASC").
		Limit(maxPrefixScanRows).
		Find(&zips).Error
	if err != nil {
		return nil, err
	}
	if len(zips) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(zips))
	for _, z := range zips {
		ids = append(ids, z.ID)
	}

	var mappings []DMAZipCode
	if err := r.DB.WithContext(ctx).Where("zip_code_id IN ?", ids).Find(&mappings).Error; err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, nil
	}

	byZipID := make(map[uint]DMAZipCode, len(mappings))
	for _, m := range mappings {
		byZipID[m.ZipCodeID] = m
	}
	// zips is already in zip-code order; honor "first with a mapping".
	for _, z := range zips {
		if m, ok := byZipID[z.ID]; ok {
			return r.loadResolved(ctx, m.DMAID)
		}
	}
	return nil, nil
}

// resolveCrossReference samples zip codes actually in use by lawyers and law
// firms on the same prefix and checks those for mappings. Catches markets
// where the zip table is sparse but the directory itself knows the area.
func (r *Resolver) resolveCrossReference(ctx context.Context, zip string) (*ResolvedDMA, error) {
	pattern := zip[:3] + "%"

	var candidates []string
	err := r.DB.WithContext(ctx).
		Table("lawyers").
		Distinct("office_zip_code").
		Where("office_zip_code LIKE ?", pattern).
		Limit(50).
		Pluck("office_zip_code", &candidates).Error
	if err != nil {
		return nil, err
	}

	var firmZips []string
	err = r.DB.WithContext(ctx).
		Table("law_firms").
		Distinct("zip_code").
		Where("zip_code LIKE ?", pattern).
		Limit(50).
		Pluck("zip_code", &firmZips).Error
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, firmZips...)

	seen := map[string]bool{zip: true}
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		resolved, err := r.resolveDirect(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			return resolved, nil
		}
	}
	return nil, nil
}

// resolveAttempt memoizes the geocoded coordinates of the query zip so the two
// geocoding strategies share a single external lookup.
type resolveAttempt struct {
	resolver *Resolver
	coords   *geocode.Coordinates
	looked   bool
}

func (a *resolveAttempt) coordinates(ctx context.Context, zip string) *geocode.Coordinates {
	if a.looked {
		return a.coords
	}
	a.looked = true
	if a.resolver.Geocoder == nil {
		return nil
	}
	coords, err := a.resolver.Geocoder.Search(ctx, zip+", USA")
	if err != nil {
		zap.L().Warn("dma resolve: geocode lookup failed", zap.String("zip", zip), zap.Error(err))
		return nil
	}
	a.coords = coords
	return coords
}

// resolveGeocode geocodes the zip, reverse-geocodes the coordinates, and
// retries a direct lookup on whatever postcode comes back.
func (a *resolveAttempt) resolveGeocode(ctx context.Context, zip string) (*ResolvedDMA, error) {
	coords := a.coordinates(ctx, zip)
	if coords == nil {
		return nil, nil
	}

	postcode, err := a.resolver.Geocoder.Reverse(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		zap.L().Warn("dma resolve: reverse geocode failed", zap.String("zip", zip), zap.Error(err))
		return nil, nil
	}
	if len(postcode) > 5 {
		postcode = postcode[:5]
	}
	if !fiveDigitZip.MatchString(postcode) || postcode == zip {
		return nil, nil
	}
	return a.resolver.resolveDirect(ctx, postcode)
}

// resolveNearestCity finds the closest city with known coordinates and
// resolves through that city's zip codes.
func (a *resolveAttempt) resolveNearestCity(ctx context.Context, zip string) (*ResolvedDMA, error) {
	coords := a.coordinates(ctx, zip)
	if coords == nil {
		return nil, nil
	}

	var cities []location.City
	err := a.resolver.DB.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}

	var nearest *location.City
	nearestDist := 0.0
	for i := range cities {
		c := &cities[i]
		d := geocode.Distance(*coords, geocode.Coordinates{Latitude: *c.Latitude, Longitude: *c.Longitude})
		if nearest == nil || d < nearestDist {
			nearest = c
			nearestDist = d
		}
	}
	if nearest == nil {
		return nil, nil
	}

	var cityZips []string
	err = a.resolver.DB.WithContext(ctx).
		Table("zip_codes").
		Where("city_id = ?", nearest.ID).
		Order("zip_code ASC").
		Pluck("zip_code", &cityZips).Error
	if err != nil {
		return nil, err
	}

	for _, cityZip := range cityZips {
		resolved, err := a.resolver.resolveDirect(ctx, cityZip)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			return resolved, nil
		}
	}
	return nil, nil
}

// ResolveForCity resolves the DMA for a named city: locally through the
// city's own zip codes first, then through geocoded postcodes when the city
// is not in the local tables.
func (r *Resolver) ResolveForCity(ctx context.Context, cityName, stateAbbr string) (*ResolvedDMA, error) {
	query := r.DB.WithContext(ctx).
		Table("zip_codes").
		Joins("JOIN cities ON cities.id = zip_codes.city_id").
		Where("LOWER(cities.name) = LOWER(?)", cityName)
	if stateAbbr != "" {
		query = query.
			Joins("JOIN states ON states.id = cities.state_id").
			Where("states.abbreviation = ?", strings.ToUpper(stateAbbr))
	}

	var cityZips []string
	if err := query.Order("zip_codes.zip_code ASC").Pluck("zip_codes.zip_code", &cityZips).Error; err != nil {
		zap.L().Warn("dma resolve: city zip lookup failed", zap.String("city", cityName), zap.Error(err))
	}

	for _, zip := range cityZips {
		resolved, err := r.resolveDirect(ctx, zip)
		if err != nil {
			zap.L().Warn("dma resolve: city zip mapping lookup failed",
				zap.String("city", cityName), zap.String("zip", zip), zap.Error(err))
			continue
		}
		if resolved != nil {
			resolved.Strategy = "city_zip"
			return resolved, nil
		}
	}

	if r.Geocoder == nil {
		return nil, nil
	}
	cityResult, err := r.Geocoder.SearchCity(ctx, cityName, stateAbbr)
	if err != nil {
		zap.L().Warn("dma resolve: city geocode failed", zap.String("city", cityName), zap.Error(err))
		return nil, nil
	}
	if cityResult == nil {
		return nil, nil
	}
	for _, postcode := range cityResult.Postcodes {
		if len(postcode) > 5 {
			postcode = postcode[:5]
		}
		if !fiveDigitZip.MatchString(postcode) {
			continue
		}
		resolved, err := r.resolveDirect(ctx, postcode)
		if err != nil {
			continue
		}
		if resolved != nil {
			resolved.Strategy = "city_geocode"
			return resolved, nil
		}
	}
	return nil, nil
}

// ResolveForState returns every DMA touched by a state's zip codes, each with
// its own zip list. State-wide lawyer queries aggregate across all of them.
func (r *Resolver) ResolveForState(ctx context.Context, stateID uint) ([]ResolvedDMA, error) {
	var dmaIDs []uint
	err := r.DB.WithContext(ctx).
		Table("dma_zip_codes").
		Distinct("dma_zip_codes.dma_id").
		Joins("JOIN zip_codes ON zip_codes.id = dma_zip_codes.zip_code_id").
		Joins("JOIN cities ON cities.id = zip_codes.city_id").
		Where("cities.state_id = ?", stateID).
		Pluck("dma_zip_codes.dma_id", &dmaIDs).Error
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedDMA, 0, len(dmaIDs))
	for _, id := range dmaIDs {
		rd, err := r.loadResolved(ctx, id)
		if err != nil {
			zap.L().Warn("dma resolve: load state dma failed", zap.Uint("dma_id", id), zap.Error(err))
			continue
		}
		if rd != nil {
			rd.Strategy = "state"
			resolved = append(resolved, *rd)
		}
	}
	return resolved, nil
}

func (r *Resolver) loadResolved(ctx context.Context, dmaID uint) (*ResolvedDMA, error) {
	var market DMA
	if err := r.DB.WithContext(ctx).First(&market, dmaID).Error; err != nil {
		return nil, err
	}

	var codes []string
	err := r.DB.WithContext(ctx).
		Table("zip_codes").
		Joins("JOIN dma_zip_codes ON dma_zip_codes.zip_code_id = zip_codes.id").
		Where("dma_zip_codes.dma_id = ?", dmaID).
		Order("zip_codes.zip_code ASC").
		Limit(maxDMAZipCodes).
		Pluck("zip_codes.zip_code", &codes).Error
	if err != nil {
		return nil, err
	}

	return &ResolvedDMA{DMA: market, ZipCodes: codes}, nil
}
