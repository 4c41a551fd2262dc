package entity

import "time"

// MaintenanceRequest is one planned or in-progress works interval on a stand.
// StartAt < EndAt always holds for records the engine accepts.
type MaintenanceRequest struct {
	ID         int64     `bson:"_id"`
	StandID    int64     `bson:"standId"`
	StandName  string    `bson:"standName"`
	Title      string    `bson:"title"`
	StatusID   int       `bson:"statusId"`
	StatusName string    `bson:"statusName"`
	StartAt    time.Time `bson:"startAt"`
	EndAt      time.Time `bson:"endAt"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// Overlaps reports whether the request intersects the half-open window
// [from, to). Touching a boundary exactly does not count as overlap.
func (m MaintenanceRequest) Overlaps(from, to time.Time) bool {
	return m.StartAt.Before(to) && m.EndAt.After(from)
}

// ImpactClass says how a maintenance status counts against capacity.
type ImpactClass int

const (
	ImpactIgnored ImpactClass = iota
	ImpactDefinite
	ImpactPotential
)

// StatusPartition splits maintenance status IDs into the definite and
// potential sets. The concrete IDs are configuration, not constants.
type StatusPartition struct {
	definite  map[int]bool
	potential map[int]bool
}

// NewStatusPartition builds a partition from the configured ID sets. An ID
// present in both sets counts as definite.
func NewStatusPartition(definiteIDs, potentialIDs []int) StatusPartition {
	p := StatusPartition{
		definite:  make(map[int]bool, len(definiteIDs)),
		potential: make(map[int]bool, len(potentialIDs)),
	}
	for _, id := range definiteIDs {
		p.definite[id] = true
	}
	for _, id := range potentialIDs {
		p.potential[id] = true
	}
	return p
}

// Class reports how a status ID counts. Statuses outside both sets are
// ignored by the overlay.
func (p StatusPartition) Class(statusID int) ImpactClass {
	switch {
	case p.definite[statusID]:
		return ImpactDefinite
	case p.potential[statusID]:
		return ImpactPotential
	default:
		return ImpactIgnored
	}
}
