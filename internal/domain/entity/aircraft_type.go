package entity

import "strings"

// BodyType classifies an airframe by fuselage width.
type BodyType string

const (
	BodyNarrow BodyType = "narrow"
	BodyWide   BodyType = "wide"
)

// sizeRank fixes the strict ICAO size ordering A < B < C < D < E < F.
var sizeRank = map[string]int{
	"A": 1,
	"B": 2,
	"C": 3,
	"D": 4,
	"E": 5,
	"F": 6,
}

// NormalizeSizeCode trims and upper-cases a size letter before comparison.
func NormalizeSizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SizeRank returns the position of a size letter in the A..F ordering.
// Unknown letters report ok=false and are treated as incompatible by callers.
func SizeRank(code string) (int, bool) {
	r, ok := sizeRank[NormalizeSizeCode(code)]
	return r, ok
}

// BodyTypeForSize maps a size letter to a body type. Sizes E and F are wide,
// everything else is narrow.
func BodyTypeForSize(code string) BodyType {
	switch NormalizeSizeCode(code) {
	case "E", "F":
		return BodyWide
	default:
		return BodyNarrow
	}
}

// AircraftType describes one aircraft model as the engine sees it.
type AircraftType struct {
	ID                int64
	ICAOCode          string
	SizeCode          string
	TurnaroundMinutes int
}

// BodyType derives the body classification from the size letter.
func (t AircraftType) BodyType() BodyType {
	return BodyTypeForSize(t.SizeCode)
}
