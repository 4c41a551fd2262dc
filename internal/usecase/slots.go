package usecase

import (
	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/utils"
)

// BuildTimeSlots divides the operating day into contiguous half-open slots.
// Slot k covers [dayStart + k*d, min(dayStart + (k+1)*d, dayEnd)); the final
// slot is truncated when the day length is not a multiple of the duration.
func BuildTimeSlots(settings entity.OperatingSettings) ([]entity.TimeSlot, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	delta := settings.SlotDurationMin * 60
	slots := make([]entity.TimeSlot, 0, (settings.DayEndSec-settings.DayStartSec+delta-1)/delta)
	for start := settings.DayStartSec; start < settings.DayEndSec; start += delta {
		end := start + delta
		if end > settings.DayEndSec {
			end = settings.DayEndSec
		}
		slots = append(slots, entity.TimeSlot{
			Name:     utils.SlotName(start, end),
			StartSec: start,
			EndSec:   end,
		})
	}
	return slots, nil
}
