package property

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusUnavailable Status = "Unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusUnavailable:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Policies are house rules shown to guests. Booking does not evaluate them.
type Policies struct {
	PetsAllowed    bool
	SmokingAllowed bool
	PartiesAllowed bool
}
