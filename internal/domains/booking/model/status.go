package model

type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

var validTransitions = map[BookingStatus][]BookingStatus{
	StatusActive:    {StatusCancelled},
	StatusCancelled: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]

	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

func (s BookingStatus) String() string {
	return string(s)
}
