package entity

import "fmt"

// ConfigError marks configuration the engine cannot run with. It is the only
// error class that aborts a run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// NewConfigError builds a ConfigError with a formatted reason.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// DataShapeError marks one malformed snapshot element. The element is dropped
// with a warning and the run continues.
type DataShapeError struct {
	Element string
	Detail  string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Element, e.Detail)
}

// Warning reasons for expected partial-data conditions. These are logged and
// counted, never surfaced as errors.
const (
	WarnUnresolvedStand     = "UnresolvedStand"
	WarnNoCompatibilityData = "NoCompatibilityData"
	WarnNoCapacityForType   = "NoCapacityForType"
)
