package entity

// OperatingSettings describes one operating day. Times of day are
// seconds-of-day integers in [0, 86400).
type OperatingSettings struct {
	DayStartSec     int
	DayEndSec       int
	SlotDurationMin int
	GapMinutes      int
}

// Validate rejects settings the slot generator cannot work with.
func (s OperatingSettings) Validate() error {
	if s.DayEndSec <= s.DayStartSec {
		return NewConfigError("operating day end %d is not after start %d", s.DayEndSec, s.DayStartSec)
	}
	if s.SlotDurationMin <= 0 {
		return NewConfigError("slot duration %d must be at least one minute", s.SlotDurationMin)
	}
	if s.GapMinutes < 0 {
		return NewConfigError("gap minutes %d must not be negative", s.GapMinutes)
	}
	return nil
}
