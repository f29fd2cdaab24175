package entity

// FanStatus represents the activity state of a fan.
type FanStatus string

const (
	// FanStatusActive indicates the fan has recent conversation activity.
	FanStatusActive FanStatus = "active"
	// FanStatusInactive indicates the fan has gone quiet.
	FanStatusInactive FanStatus = "inactive"
	// FanStatusOffline indicates the fan is disconnected from the platform.
	FanStatusOffline FanStatus = "offline"
)

// String returns the string representation of the FanStatus.
func (s FanStatus) String() string {
	return string(s)
}

// IsValid checks if the FanStatus is a valid value.
func (s FanStatus) IsValid() bool {
	switch s {
	case FanStatusActive, FanStatusInactive, FanStatusOffline:
		return true
	default:
		return false
	}
}
