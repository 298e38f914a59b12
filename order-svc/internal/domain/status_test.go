package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Next(t *testing.T) {
	sequence := []Status{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusReadyForPickup, StatusOutForDelivery, StatusDelivered,
	}
	for i := 0; i < len(sequence)-1; i++ {
		next, ok := sequence[i].Next()
		assert.True(t, ok)
		assert.Equal(t, sequence[i+1], next)
	}

	_, ok := StatusDelivered.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending skips to preparing", StatusPending, StatusPreparing, false},
		{"pending skips to delivered", StatusPending, StatusDelivered, false},
		{"confirmed to preparing", StatusConfirmed, StatusPreparing, true},
		{"confirmed cannot cancel", StatusConfirmed, StatusCancelled, false},
		{"preparing cannot cancel", StatusPreparing, StatusCancelled, false},
		{"out for delivery to delivered", StatusOutForDelivery, StatusDelivered, true},
		{"delivered is terminal", StatusDelivered, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"no backwards moves", StatusPreparing, StatusConfirmed, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, CanTransition(testCase.from, testCase.to))
		})
	}
}
