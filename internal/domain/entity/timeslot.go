package entity

// TimeSlot is one half-open window [StartSec, EndSec) of the operating day.
// Slots of a day are totally ordered, contiguous and non-overlapping.
type TimeSlot struct {
	Name     string
	StartSec int
	EndSec   int
}

// Minutes is the slot length in whole minutes. The final slot of a day may be
// truncated, so this is not necessarily the configured slot duration.
func (s TimeSlot) Minutes() int {
	return (s.EndSec - s.StartSec) / 60
}
