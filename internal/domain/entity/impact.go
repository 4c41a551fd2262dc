package entity

import "time"

// ImpactedRequest identifies one maintenance request that reduced capacity
// on a given date.
type ImpactedRequest struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	StandCode  string    `json:"standCode"`
	StatusName string    `json:"statusName"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
}

// ImpactDetail is the reduction attributable to one status class on one
// date, with the contributing requests deduplicated in first-seen order.
type ImpactDetail struct {
	Reduction BodyCounts        `json:"reduction"`
	Requests  []ImpactedRequest `json:"requests"`
}

// DailyImpact is the net capacity picture for one date. Values are never
// mutated after emission.
type DailyImpact struct {
	Date          string       `json:"date"`
	Original      BodyCounts   `json:"original"`
	AfterDefinite BodyCounts   `json:"afterDefinite"`
	Final         BodyCounts   `json:"final"`
	Definite      ImpactDetail `json:"definite"`
	Potential     ImpactDetail `json:"potential"`
}
