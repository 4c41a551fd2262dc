package entity

// Stand is an aircraft parking position. The engine treats stands as
// immutable within a run.
type Stand struct {
	ID     int64
	Code   string
	PierID int64

	IsActive bool

	// MaxSizeCode is the largest size letter the stand accepts. Empty means
	// no size limit is recorded for the stand.
	MaxSizeCode string

	// CompatibleTypeIDs, when non-empty, overrides the size-based rule and
	// lists the aircraft types the stand accepts explicitly.
	CompatibleTypeIDs []int64
}
