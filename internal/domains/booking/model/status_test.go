package model_test

import (
	"testing"

	"stay/internal/domains/booking/model"
)

func TestBookingStatus_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   model.BookingStatus
		expected bool
	}{
		{
			name:     "active is valid",
			status:   model.StatusActive,
			expected: true,
		},
		{
			name:     "cancelled is valid",
			status:   model.StatusCancelled,
			expected: true,
		},
		{
			name:     "unknown status is invalid",
			status:   model.BookingStatus("pending"),
			expected: false,
		},
		{
			name:     "empty status is invalid",
			status:   model.BookingStatus(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.expected {
				t.Errorf("expected IsValid() to be %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     model.BookingStatus
		to       model.BookingStatus
		expected bool
	}{
		{
			name:     "active can be cancelled",
			from:     model.StatusActive,
			to:       model.StatusCancelled,
			expected: true,
		},
		{
			name:     "cancelled is terminal",
			from:     model.StatusCancelled,
			to:       model.StatusActive,
			expected: false,
		},
		{
			name:     "cancelled cannot be cancelled again",
			from:     model.StatusCancelled,
			to:       model.StatusCancelled,
			expected: false,
		},
		{
			name:     "active cannot transition to itself",
			from:     model.StatusActive,
			to:       model.StatusActive,
			expected: false,
		},
		{
			name:     "unknown status has no transitions",
			from:     model.BookingStatus("pending"),
			to:       model.StatusCancelled,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("expected CanTransitionTo(%s) to be %v, got %v", tt.to, tt.expected, got)
			}
		})
	}
}

func TestBookingStatus_String(t *testing.T) {
	if model.StatusActive.String() != "active" {
		t.Errorf("expected 'active', got %s", model.StatusActive.String())
	}

	if model.StatusCancelled.String() != "cancelled" {
		t.Errorf("expected 'cancelled', got %s", model.StatusCancelled.String())
	}
}
