package subscription

import (
	"context"
	"sort"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Candidate is what the ranker needs to know about one deduplicated lawyer:
// its identity and its default tier. The order of the candidate slice is the
// aggregation order and is preserved within each tier group.
type Candidate struct {
	ID          uint
	DefaultTier string
}

// RankOutcome is the ranked view of a candidate set. OrderedIDs is the
// flattened "all lawyers" order (tier sort order, aggregation order within a
// tier, caps applied). Groups holds the same ids keyed by tier name.
type RankOutcome struct {
	OrderedIDs []uint
	Groups     map[string][]uint
	Types      []SubscriptionType
}

type Ranker struct {
	DB *gorm.DB
}

func NewRanker(db *gorm.DB) *Ranker {
	return &Ranker{DB: db}
}

// Rank assigns each candidate its effective tier for the in-scope DMAs,
// groups by tier, applies per-tier caps, and flattens back into one ordered
// list. Query failures degrade: a failed override lookup means no overrides,
// a failed limit lookup means no caps. The ranker never errors a request.
func (r *Ranker) Rank(ctx context.Context, candidates []Candidate, dmaIDs []uint) RankOutcome {
	types := r.loadTypes(ctx)
	sortOrderByTier := make(map[string]int, len(types))
	for _, t := range types {
		sortOrderByTier[t.Name] = t.SortOrder
	}

	overrides := r.loadOverrides(ctx, candidates, dmaIDs)

	groups := map[string][]uint{}
	for _, candidate := range candidates {
		tier := effectiveTier(candidate, overrides[candidate.ID], dmaIDs, sortOrderByTier)
		groups[tier] = append(groups[tier], candidate.ID)
	}

	caps := r.effectiveCaps(ctx, dmaIDs)
	for tier, ids := range groups {
		if max, ok := caps[tier]; ok && max != nil && len(ids) > *max {
			groups[tier] = ids[:*max]
		}
	}

	ordered := make([]uint, 0, len(candidates))
	for _, tier := range tierOrder(groups, sortOrderByTier) {
		ordered = append(ordered, groups[tier]...)
	}

	return RankOutcome{OrderedIDs: ordered, Groups: groups, Types: types}
}

// effectiveTier computes the candidate's tier in each in-scope market (that
// market's override when one exists, the default tier otherwise) and keeps the
// best (lowest sort order) of them. In a single-market query a present
// override is authoritative, demotions included; best-wins only kicks in when
// a state-wide search spans several markets.
func effectiveTier(candidate Candidate, overrideByDMA map[uint]string, dmaIDs []uint, sortOrderByTier map[string]int) string {
	if len(dmaIDs) == 0 || len(overrideByDMA) == 0 {
		return candidate.DefaultTier
	}

	var (
		best      string
		bestOrder int
		bestKnown bool
		first     = true
	)
	for _, dmaID := range dmaIDs {
		tier, ok := overrideByDMA[dmaID]
		if !ok {
			tier = candidate.DefaultTier
		}
		order, known := sortOrderByTier[tier]
		if first || (known && (!bestKnown || order < bestOrder)) {
			best, bestOrder, bestKnown = tier, order, known
			first = false
		}
	}
	return best
}

func (r *Ranker) loadTypes(ctx context.Context) []SubscriptionType {
	var types []SubscriptionType
	err := r.DB.WithContext(ctx).Order("sort_order ASC").Find(&types).Error
	if err != nil {
		zap.L().Warn("ranker: subscription type lookup failed", zap.Error(err))
		return nil
	}
	return types
}

func (r *Ranker) loadOverrides(ctx context.Context, candidates []Candidate, dmaIDs []uint) map[uint]map[uint]string {
	if len(candidates) == 0 || len(dmaIDs) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	var rows []LawyerDMASubscription
	err := r.DB.WithContext(ctx).
		Where("lawyer_id IN ? AND dma_id IN ?", ids, dmaIDs).
		Find(&rows).Error
	if err != nil {
		zap.L().Warn("ranker: override lookup failed", zap.Error(err))
		return nil
	}

	byLawyer := make(map[uint]map[uint]string, len(rows))
	for _, row := range rows {
		if byLawyer[row.LawyerID] == nil {
			byLawyer[row.LawyerID] = map[uint]string{}
		}
		byLawyer[row.LawyerID][row.DMAID] = row.SubscriptionType
	}
	return byLawyer
}

// CapsForDMAs reports the effective per-tier caps for a set of markets. Used
// by the back-office limits checker.
func (r *Ranker) CapsForDMAs(ctx context.Context, dmaIDs []uint) map[string]*int {
	return r.effectiveCaps(ctx, dmaIDs)
}

// effectiveCaps computes the per-tier cap for the in-scope DMAs. For one DMA
// the DMA-specific row wins over the global default; nil means unlimited.
// Across multiple DMAs the combined cap is unlimited if any DMA is unlimited,
// otherwise the most restrictive limit.
func (r *Ranker) effectiveCaps(ctx context.Context, dmaIDs []uint) map[string]*int {
	var rows []SubscriptionLimit
	err := r.DB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		zap.L().Warn("ranker: subscription limit lookup failed", zap.Error(err))
		return nil
	}

	globalByTier := map[string]SubscriptionLimit{}
	dmaByTier := map[string]map[string]SubscriptionLimit{} // dma id string → tier → row
	for _, row := range rows {
		switch row.LocationType {
		case "global":
			globalByTier[row.SubscriptionType] = row
		case "dma":
			if dmaByTier[row.LocationValue] == nil {
				dmaByTier[row.LocationValue] = map[string]SubscriptionLimit{}
			}
			dmaByTier[row.LocationValue][row.SubscriptionType] = row
		}
	}

	tiers := map[string]bool{}
	for tier := range globalByTier {
		tiers[tier] = true
	}
	for _, byTier := range dmaByTier {
		for tier := range byTier {
			tiers[tier] = true
		}
	}

	caps := make(map[string]*int, len(tiers))
	for tier := range tiers {
		caps[tier] = combineCaps(tier, dmaIDs, dmaByTier, globalByTier)
	}
	return caps
}

func combineCaps(tier string, dmaIDs []uint, dmaByTier map[string]map[string]SubscriptionLimit, globalByTier map[string]SubscriptionLimit) *int {
	perDMA := func(dmaID uint) *int {
		if byTier, ok := dmaByTier[strconv.FormatUint(uint64(dmaID), 10)]; ok {
			if row, ok := byTier[tier]; ok {
				return row.MaxLawyers
			}
		}
		if row, ok := globalByTier[tier]; ok {
			return row.MaxLawyers
		}
		return nil
	}

	if len(dmaIDs) == 0 {
		// No market context: only the global default applies.
		if row, ok := globalByTier[tier]; ok {
			return row.MaxLawyers
		}
		return nil
	}

	var combined *int
	for _, dmaID := range dmaIDs {
		limit := perDMA(dmaID)
		if limit == nil {
			return nil
		}
		if combined == nil || *limit < *combined {
			combined = limit
		}
	}
	return combined
}

// tierOrder lists the tier names present in groups, known tiers first in
// sort-order sequence, unknown tier names after in lexical order.
func tierOrder(groups map[string][]uint, sortOrderByTier map[string]int) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iKnown := sortOrderByTier[names[i]]
		oj, jKnown := sortOrderByTier[names[j]]
		if iKnown != jKnown {
			return iKnown
		}
		if iKnown && oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	return names
}
