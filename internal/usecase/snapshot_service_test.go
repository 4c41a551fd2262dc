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

type fakeConfigRepo struct {
	stands   []entity.Stand
	types    []entity.AircraftType
	rules    []entity.AdjacencyRule
	settings entity.OperatingSettings
	calls    int
}

func (f *fakeConfigRepo) ListStands(ctx context.Context) ([]entity.Stand, error) {
	f.calls++
	return f.stands, nil
}

func (f *fakeConfigRepo) ListAircraftTypes(ctx context.Context) ([]entity.AircraftType, error) {
	return f.types, nil
}

func (f *fakeConfigRepo) ListAdjacencyRules(ctx context.Context) ([]entity.AdjacencyRule, error) {
	return f.rules, nil
}

func (f *fakeConfigRepo) GetOperatingSettings(ctx context.Context) (*entity.OperatingSettings, error) {
	s := f.settings
	return &s, nil
}

func TestSnapshotServiceDropsMalformedElements(t *testing.T) {
	repo := &fakeConfigRepo{
		stands: []entity.Stand{
			{ID: 1, Code: "S1", IsActive: true, MaxSizeCode: "C"},
			{ID: 2, Code: "", IsActive: true}, // dropped
		},
		types: []entity.AircraftType{
			{ID: 1, ICAOCode: "A320", SizeCode: "C", TurnaroundMinutes: 45},
			{ID: 2, ICAOCode: "", SizeCode: "C"},                            // dropped
			{ID: 3, ICAOCode: "B777", SizeCode: "Z"},                        // dropped
			{ID: 4, ICAOCode: "AT76", SizeCode: "B", TurnaroundMinutes: -5}, // turnaround reset
		},
		rules: []entity.AdjacencyRule{
			{ID: 1, StandID: 1, AffectedStandID: 1, Kind: entity.RestrictionNoUse, IsActive: true}, // dropped
			{ID: 2, StandID: 1, AffectedStandID: 2, Kind: "SOMETHING_ELSE", IsActive: true},        // dropped
			{ID: 3, StandID: 1, AffectedStandID: 2, Kind: entity.RestrictionNoUse, IsActive: true},
		},
		settings: entity.OperatingSettings{DayStartSec: 21600, DayEndSec: 79200, SlotDurationMin: 60},
	}
	svc := NewSnapshotService(repo, nil, time.Minute, time.UTC, nil, logger.NewNop())

	snap, err := svc.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Stands, 1)
	assert.Equal(t, "S1", snap.Stands[0].Code)

	require.Len(t, snap.AircraftTypes, 2)
	assert.Equal(t, "A320", snap.AircraftTypes[0].ICAOCode)
	assert.Equal(t, 0, snap.AircraftTypes[1].TurnaroundMinutes)

	require.Len(t, snap.AdjacencyRules, 1)
	assert.Equal(t, int64(3), snap.AdjacencyRules[0].ID)

	assert.Equal(t, time.UTC, snap.Zone)
}

func TestSnapshotServiceCachesResult(t *testing.T) {
	repo := &fakeConfigRepo{
		settings: entity.OperatingSettings{DayStartSec: 0, DayEndSec: 86400, SlotDurationMin: 60},
	}
	svc := NewSnapshotService(repo, cache.New(0, nil), time.Minute, time.UTC, nil, logger.NewNop())

	first, err := svc.Load(context.Background())
	require.NoError(t, err)
	second, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.calls)
}
