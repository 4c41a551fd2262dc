package entity

// RestrictionKind identifies what an adjacency rule does to the affected
// stand while the neighbouring stand is in use.
type RestrictionKind string

const (
	RestrictionNoUse          RestrictionKind = "NO_USE"
	RestrictionMaxSizeReduced RestrictionKind = "MAX_SIZE_REDUCED_TO"
	RestrictionTypeProhibited RestrictionKind = "TYPE_PROHIBITED"
)

// AdjacencyRule restricts AffectedStandID while StandID hosts a triggering
// aircraft. A nil TriggerTypeID means any aircraft on the neighbour triggers
// the rule. StandID and AffectedStandID are always distinct.
type AdjacencyRule struct {
	ID              int64
	StandID         int64
	AffectedStandID int64
	TriggerTypeID   *int64
	Kind            RestrictionKind

	// MaxSizeCode carries the payload for MAX_SIZE_REDUCED_TO rules.
	MaxSizeCode string
	// ProhibitedTypeID carries the payload for TYPE_PROHIBITED rules.
	ProhibitedTypeID int64

	IsActive bool
}
