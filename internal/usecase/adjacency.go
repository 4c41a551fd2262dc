package usecase

import "standcap-service/internal/domain/entity"

// AdjacencyGraph indexes active adjacency rules by the stand they restrict.
type AdjacencyGraph struct {
	byAffected map[int64][]entity.AdjacencyRule
	typesByID  map[int64]entity.AircraftType
	typeByCode map[string]entity.AircraftType
}

// NewAdjacencyGraph builds the restriction index. Inactive rules are ignored.
func NewAdjacencyGraph(rules []entity.AdjacencyRule, types []entity.AircraftType) *AdjacencyGraph {
	g := &AdjacencyGraph{
		byAffected: make(map[int64][]entity.AdjacencyRule),
		typesByID:  make(map[int64]entity.AircraftType, len(types)),
		typeByCode: make(map[string]entity.AircraftType, len(types)),
	}
	for _, t := range types {
		g.typesByID[t.ID] = t
		g.typeByCode[t.ICAOCode] = t
	}
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		g.byAffected[r.AffectedStandID] = append(g.byAffected[r.AffectedStandID], r)
	}
	return g
}

// Restrict applies every rule targeting standID to the base compatibility
// set and returns the worst-case set. All reductions are set-monotonic, so
// application order does not matter.
func (g *AdjacencyGraph) Restrict(standID int64, codes []string) []string {
	rules := g.byAffected[standID]
	if len(rules) == 0 {
		return codes
	}

	allowed := make(map[string]bool, len(codes))
	for _, c := range codes {
		allowed[c] = true
	}

	for _, r := range rules {
		switch r.Kind {
		case entity.RestrictionNoUse:
			return nil
		case entity.RestrictionMaxSizeReduced:
			maxRank, ok := entity.SizeRank(r.MaxSizeCode)
			if !ok {
				continue
			}
			for c := range allowed {
				rank, ok := entity.SizeRank(g.typeByCode[c].SizeCode)
				if !ok || rank > maxRank {
					delete(allowed, c)
				}
			}
		case entity.RestrictionTypeProhibited:
			if t, ok := g.typesByID[r.ProhibitedTypeID]; ok {
				delete(allowed, t.ICAOCode)
			}
		}
	}

	out := make([]string, 0, len(allowed))
	for _, c := range codes {
		if allowed[c] {
			out = append(out, c)
		}
	}
	return out
}
