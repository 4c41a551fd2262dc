package usecase

import "standcap-service/internal/domain/entity"

// defaultTurnaroundBySize backs aircraft types without an explicit
// turnaround entry.
var defaultTurnaroundBySize = map[string]int{
	"A": 30,
	"B": 35,
	"C": 45,
	"D": 60,
	"E": 90,
	"F": 120,
}

// fallbackTurnaroundMinutes applies when both the type entry and the size
// letter are unknown.
const fallbackTurnaroundMinutes = 45

// TurnaroundTable maps aircraft type codes to minimum turnaround minutes.
type TurnaroundTable struct {
	minutes map[string]int
}

// NewTurnaroundTable builds the lookup from the fleet, filling gaps from the
// size-keyed defaults.
func NewTurnaroundTable(types []entity.AircraftType) *TurnaroundTable {
	minutes := make(map[string]int, len(types))
	for _, t := range types {
		switch {
		case t.TurnaroundMinutes >= 1:
			minutes[t.ICAOCode] = t.TurnaroundMinutes
		default:
			if d, ok := defaultTurnaroundBySize[entity.NormalizeSizeCode(t.SizeCode)]; ok {
				minutes[t.ICAOCode] = d
			} else {
				minutes[t.ICAOCode] = fallbackTurnaroundMinutes
			}
		}
	}
	return &TurnaroundTable{minutes: minutes}
}

// Minutes returns the turnaround for a type code, falling back to 45 for
// codes outside the fleet.
func (t *TurnaroundTable) Minutes(code string) int {
	if m, ok := t.minutes[code]; ok {
		return m
	}
	return fallbackTurnaroundMinutes
}
