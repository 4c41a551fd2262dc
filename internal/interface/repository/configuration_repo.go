package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormConfigurationRepository implements the ConfigurationRepository
// interface against the reference-data schema.
type GormConfigurationRepository struct {
	db *gorm.DB
}

// NewGormConfigurationRepository creates a new GORM configuration repository
func NewGormConfigurationRepository(db *gorm.DB) repository.ConfigurationRepository {
	return &GormConfigurationRepository{
		db: db,
	}
}

// Stands GORM model for database mapping
type Stands struct {
	ID                  int64  `gorm:"column:id;primaryKey"`
	Code                string `gorm:"column:code"`
	PierID              int64  `gorm:"column:pier_id"`
	IsActive            bool   `gorm:"column:is_active"`
	MaxAircraftSizeCode string `gorm:"column:max_aircraft_size_code"`
	// CompatibleTypeIDs is stored as a comma-separated ID list.
	CompatibleTypeIDs string         `gorm:"column:compatible_aircraft_type_ids"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the default table name
func (Stands) TableName() string {
	return "m_stands"
}

// AircraftTypes GORM model for database mapping
type AircraftTypes struct {
	ID                int64          `gorm:"column:id;primaryKey"`
	ICAOCode          string         `gorm:"column:icao_code;unique"`
	SizeCategoryCode  string         `gorm:"column:size_category_code"`
	TurnaroundMinutes int            `gorm:"column:turnaround_minutes"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the default table name
func (AircraftTypes) TableName() string {
	return "m_aircraft_types"
}

// StandAdjacencies GORM model for database mapping
type StandAdjacencies struct {
	ID                int64  `gorm:"column:id;primaryKey"`
	StandID           int64  `gorm:"column:stand_id"`
	AffectedStandID   int64  `gorm:"column:affected_stand_id"`
	TriggerTypeID     *int64 `gorm:"column:trigger_aircraft_type_id"`
	RestrictionKind   string `gorm:"column:restriction_kind"`
	MaxSizeCode       string `gorm:"column:max_size_code"`
	ProhibitedTypeID  int64  `gorm:"column:prohibited_aircraft_type_id"`
	IsActive          bool   `gorm:"column:is_active"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the default table name
func (StandAdjacencies) TableName() string {
	return "m_stand_adjacencies"
}

// OperatingSettingsRow GORM model for database mapping. The table holds a
// single row.
type OperatingSettingsRow struct {
	ID              int64 `gorm:"column:id;primaryKey"`
	DayStartSec     int   `gorm:"column:day_start_sec"`
	DayEndSec       int   `gorm:"column:day_end_sec"`
	SlotDurationMin int   `gorm:"column:slot_duration_min"`
	GapMinutes      int   `gorm:"column:gap_minutes"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (OperatingSettingsRow) TableName() string {
	return "m_operating_settings"
}

// ListStands returns the full stand inventory
func (r *GormConfigurationRepository) ListStands(ctx context.Context) ([]entity.Stand, error) {
	var rows []Stands
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stands := make([]entity.Stand, 0, len(rows))
	for _, row := range rows {
		stands = append(stands, entity.Stand{
			ID:                row.ID,
			Code:              row.Code,
			PierID:            row.PierID,
			IsActive:          row.IsActive,
			MaxSizeCode:       row.MaxAircraftSizeCode,
			CompatibleTypeIDs: parseIDList(row.CompatibleTypeIDs),
		})
	}
	return stands, nil
}

// ListAircraftTypes returns the aircraft fleet reference data
func (r *GormConfigurationRepository) ListAircraftTypes(ctx context.Context) ([]entity.AircraftType, error) {
	var rows []AircraftTypes
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]entity.AircraftType, 0, len(rows))
	for _, row := range rows {
		types = append(types, entity.AircraftType{
			ID:                row.ID,
			ICAOCode:          row.ICAOCode,
			SizeCode:          row.SizeCategoryCode,
			TurnaroundMinutes: row.TurnaroundMinutes,
		})
	}
	return types, nil
}

// ListAdjacencyRules returns all adjacency restrictions
func (r *GormConfigurationRepository) ListAdjacencyRules(ctx context.Context) ([]entity.AdjacencyRule, error) {
	var rows []StandAdjacencies
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]entity.AdjacencyRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, entity.AdjacencyRule{
			ID:               row.ID,
			StandID:          row.StandID,
			AffectedStandID:  row.AffectedStandID,
			TriggerTypeID:    row.TriggerTypeID,
			Kind:             entity.RestrictionKind(row.RestrictionKind),
			MaxSizeCode:      row.MaxSizeCode,
			ProhibitedTypeID: row.ProhibitedTypeID,
			IsActive:         row.IsActive,
		})
	}
	return rules, nil
}

// GetOperatingSettings returns the single operating-day settings row
func (r *GormConfigurationRepository) GetOperatingSettings(ctx context.Context) (*entity.OperatingSettings, error) {
	var row OperatingSettingsRow
	result := r.db.WithContext(ctx).Order("id").First(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.OperatingSettings{
		DayStartSec:     row.DayStartSec,
		DayEndSec:       row.DayEndSec,
		SlotDurationMin: row.SlotDurationMin,
		GapMinutes:      row.GapMinutes,
	}, nil
}

func parseIDList(s string) []int64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
