package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"
)

// Snapshot is the immutable configuration a run computes from: the stand
// inventory, the aircraft fleet, adjacency restrictions and the operating
// day settings, all pinned to one time zone.
type Snapshot struct {
	Stands         []Stand
	AircraftTypes  []AircraftType
	AdjacencyRules []AdjacencyRule
	Settings       OperatingSettings
	Zone           *time.Location
}

// Hash produces a stable digest of the snapshot contents, used as the
// template cache key. Element order does not affect the result.
func (s *Snapshot) Hash() string {
	h := sha256.New()

	fmt.Fprintf(h, "settings:%d:%d:%d:%d;", s.Settings.DayStartSec, s.Settings.DayEndSec,
		s.Settings.SlotDurationMin, s.Settings.GapMinutes)
	if s.Zone != nil {
		fmt.Fprintf(h, "zone:%s;", s.Zone.String())
	}

	stands := make([]Stand, len(s.Stands))
	copy(stands, s.Stands)
	sort.Slice(stands, func(i, j int) bool { return stands[i].ID < stands[j].ID })
	for _, st := range stands {
		fmt.Fprintf(h, "stand:%d:%s:%d:%t:%s", st.ID, st.Code, st.PierID, st.IsActive, st.MaxSizeCode)
		ids := make([]int64, len(st.CompatibleTypeIDs))
		copy(ids, st.CompatibleTypeIDs)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Fprintf(h, ":%d", id)
		}
		fmt.Fprint(h, ";")
	}

	types := make([]AircraftType, len(s.AircraftTypes))
	copy(types, s.AircraftTypes)
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	for _, t := range types {
		fmt.Fprintf(h, "type:%d:%s:%s:%d;", t.ID, t.ICAOCode, t.SizeCode, t.TurnaroundMinutes)
	}

	rules := make([]AdjacencyRule, len(s.AdjacencyRules))
	copy(rules, s.AdjacencyRules)
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	for _, r := range rules {
		trigger := int64(-1)
		if r.TriggerTypeID != nil {
			trigger = *r.TriggerTypeID
		}
		fmt.Fprintf(h, "rule:%d:%d:%d:%d:%s:%s:%d:%t;", r.ID, r.StandID, r.AffectedStandID,
			trigger, r.Kind, r.MaxSizeCode, r.ProhibitedTypeID, r.IsActive)
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}
