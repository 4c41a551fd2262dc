package usecase

import (
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/logger"
)

// idleDaySnapshot is the baseline fixture: one C-size stand, one A320,
// 06:00-22:00 day in hourly slots with a 15 minute gap. Each slot fits
// exactly one A320 turnaround, so the day totals 16 narrow movements.
func idleDaySnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Stands: []entity.Stand{
			{ID: 1, Code: "S1", PierID: 1, IsActive: true, MaxSizeCode: "C"},
		},
		AircraftTypes: []entity.AircraftType{
			{ID: 1, ICAOCode: "A320", SizeCode: "C", TurnaroundMinutes: 45},
		},
		Settings: entity.OperatingSettings{
			DayStartSec:     21600, // 06:00
			DayEndSec:       79200, // 22:00
			SlotDurationMin: 60,
			GapMinutes:      15,
		},
		Zone: time.UTC,
	}
}

// twoStandSnapshot adds a wide-body stand (S2 with a B777) and an inactive
// stand S3 whose only compatible type is absent from the template.
func twoStandSnapshot() *entity.Snapshot {
	snap := idleDaySnapshot()
	snap.Stands = append(snap.Stands,
		entity.Stand{ID: 2, Code: "S2", PierID: 1, IsActive: true, CompatibleTypeIDs: []int64{2}},
		entity.Stand{ID: 3, Code: "S3", PierID: 1, IsActive: false, CompatibleTypeIDs: []int64{3}},
	)
	snap.AircraftTypes = append(snap.AircraftTypes,
		entity.AircraftType{ID: 2, ICAOCode: "B777", SizeCode: "E", TurnaroundMinutes: 45},
		entity.AircraftType{ID: 3, ICAOCode: "B77W", SizeCode: "E", TurnaroundMinutes: 45},
	)
	return snap
}

func newTestTemplateService() *TemplateService {
	return NewTemplateService(nil, time.Minute, nil, logger.NewNop())
}

func newTestImpactService(maxParallel int) *ImpactService {
	partition := entity.NewStatusPartition([]int{2, 4, 5}, []int{1})
	return NewImpactService(newTestTemplateService(), partition, maxParallel, nil, logger.NewNop())
}

func maintenanceOn(id int64, standID int64, statusID int, start, end time.Time) entity.MaintenanceRequest {
	return entity.MaintenanceRequest{
		ID:         id,
		StandID:    standID,
		StandName:  "Stand",
		Title:      "Works",
		StatusID:   statusID,
		StatusName: statusName(statusID),
		StartAt:    start,
		EndAt:      end,
	}
}

func statusName(id int) string {
	switch id {
	case 1:
		return "Requested"
	case 2:
		return "Approved"
	case 4:
		return "In Progress"
	case 5:
		return "Completed"
	default:
		return "Unknown"
	}
}

func day(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
