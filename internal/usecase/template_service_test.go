package usecase

import (
	"context"
	"testing"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/cache"
	"standcap-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTemplateIdleDay(t *testing.T) {
	tpl, err := newTestTemplateService().ComputeTemplate(context.Background(), idleDaySnapshot())
	require.NoError(t, err)

	require.Len(t, tpl.Slots, 16)
	for _, slot := range tpl.Slots {
		// 60 minutes / (45 turnaround + 15 gap) = 1 movement per slot
		assert.Equal(t, 1, tpl.BestCase[slot.Name]["A320"], slot.Name)
		assert.Equal(t, 1, tpl.WorstCase[slot.Name]["A320"], slot.Name)
	}

	totals := tpl.DailyTotals()
	assert.Equal(t, entity.BodyCounts{Narrow: 16, Wide: 0, Total: 16}, totals)
}

func TestComputeTemplateOccupationExceedingSlotYieldsZero(t *testing.T) {
	snap := idleDaySnapshot()
	snap.AircraftTypes[0].TurnaroundMinutes = 75 // 75 + 15 > 60

	tpl, err := newTestTemplateService().ComputeTemplate(context.Background(), snap)
	require.NoError(t, err)

	for _, slot := range tpl.Slots {
		assert.Equal(t, 0, tpl.BestCase[slot.Name]["A320"])
	}
}

func TestComputeTemplateInactiveStandContributesNothing(t *testing.T) {
	snap := idleDaySnapshot()
	snap.Stands[0].IsActive = false

	tpl, err := newTestTemplateService().ComputeTemplate(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, entity.BodyCounts{}, tpl.DailyTotals())
}

func TestComputeTemplateWorstCaseNeverExceedsBestCase(t *testing.T) {
	snap := twoStandSnapshot()
	snap.AdjacencyRules = []entity.AdjacencyRule{
		{ID: 1, StandID: 2, AffectedStandID: 1, Kind: entity.RestrictionMaxSizeReduced, MaxSizeCode: "B", IsActive: true},
	}

	tpl, err := newTestTemplateService().ComputeTemplate(context.Background(), snap)
	require.NoError(t, err)

	for _, slot := range tpl.Slots {
		for code, best := range tpl.BestCase[slot.Name] {
			worst, ok := tpl.WorstCase[slot.Name][code]
			require.True(t, ok, "worst case missing %s in %s", code, slot.Name)
			assert.LessOrEqual(t, worst, best)
		}
	}
}

func TestComputeTemplateAdjacencyWorstCase(t *testing.T) {
	// S1 accepts up to C; a neighbour reduces it to B in the worst case.
	// With only an A320 (size C) in the fleet, the worst case drops to zero
	// while the best case is unchanged.
	snap := idleDaySnapshot()
	snap.Stands = append(snap.Stands, entity.Stand{ID: 2, Code: "S2", PierID: 1, IsActive: true, MaxSizeCode: "C"})
	snap.AdjacencyRules = []entity.AdjacencyRule{
		{ID: 1, StandID: 2, AffectedStandID: 1, Kind: entity.RestrictionMaxSizeReduced, MaxSizeCode: "B", IsActive: true},
	}

	tpl, err := newTestTemplateService().ComputeTemplate(context.Background(), snap)
	require.NoError(t, err)

	for _, slot := range tpl.Slots {
		// Both stands contribute in the best case, only S2 in the worst
		assert.Equal(t, 2, tpl.BestCase[slot.Name]["A320"])
		assert.Equal(t, 1, tpl.WorstCase[slot.Name]["A320"])
	}
}

func TestComputeTemplateAddingStandIsMonotonic(t *testing.T) {
	base, err := newTestTemplateService().ComputeTemplate(context.Background(), idleDaySnapshot())
	require.NoError(t, err)

	grown := idleDaySnapshot()
	grown.Stands = append(grown.Stands, entity.Stand{ID: 2, Code: "S2", PierID: 1, IsActive: true, MaxSizeCode: "C"})
	bigger, err := newTestTemplateService().ComputeTemplate(context.Background(), grown)
	require.NoError(t, err)

	for _, slot := range base.Slots {
		for code, n := range base.BestCase[slot.Name] {
			assert.GreaterOrEqual(t, bigger.BestCase[slot.Name][code], n)
		}
	}
}

func TestComputeTemplateIsCached(t *testing.T) {
	c := cache.New(0, nil)
	svc := NewTemplateService(c, time.Minute, nil, logger.NewNop())

	first, err := svc.ComputeTemplate(context.Background(), idleDaySnapshot())
	require.NoError(t, err)
	second, err := svc.ComputeTemplate(context.Background(), idleDaySnapshot())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestComputeTemplateConfigError(t *testing.T) {
	snap := idleDaySnapshot()
	snap.Settings.DayEndSec = snap.Settings.DayStartSec

	_, err := newTestTemplateService().ComputeTemplate(context.Background(), snap)
	require.Error(t, err)
	var cfgErr *entity.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
