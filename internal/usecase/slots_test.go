package usecase

import (
	"testing"

	"standcap-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeSlots(t *testing.T) {
	slots, err := BuildTimeSlots(entity.OperatingSettings{
		DayStartSec: 21600, DayEndSec: 79200, SlotDurationMin: 60,
	})
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.Equal(t, "06:00 - 07:00", slots[0].Name)
	assert.Equal(t, "21:00 - 22:00", slots[15].Name)

	// Contiguous, half-open, ascending
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndSec, slots[i].StartSec)
		assert.Less(t, slots[i].StartSec, slots[i].EndSec)
	}
}

func TestBuildTimeSlotsTruncatesFinalSlot(t *testing.T) {
	// 06:00-08:30 in 60-minute slots leaves a 30-minute remainder
	slots, err := BuildTimeSlots(entity.OperatingSettings{
		DayStartSec: 21600, DayEndSec: 30600, SlotDurationMin: 60,
	})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	last := slots[2]
	assert.Equal(t, "08:00 - 08:30", last.Name)
	assert.Equal(t, 30, last.Minutes())
}

func TestBuildTimeSlotsRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings entity.OperatingSettings
	}{
		{name: "end before start", settings: entity.OperatingSettings{DayStartSec: 79200, DayEndSec: 21600, SlotDurationMin: 60}},
		{name: "end equals start", settings: entity.OperatingSettings{DayStartSec: 21600, DayEndSec: 21600, SlotDurationMin: 60}},
		{name: "zero duration", settings: entity.OperatingSettings{DayStartSec: 21600, DayEndSec: 79200, SlotDurationMin: 0}},
		{name: "negative gap", settings: entity.OperatingSettings{DayStartSec: 21600, DayEndSec: 79200, SlotDurationMin: 60, GapMinutes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildTimeSlots(tt.settings)
			require.Error(t, err)
			var cfgErr *entity.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}
