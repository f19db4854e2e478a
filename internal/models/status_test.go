package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusRequested, StatusPendingConfirmation,
		StatusCompleted, StatusDelivered, StatusCancelled,
	} {
		require.True(t, s.Valid(), "expected %q to be a known status", s)
	}

	require.False(t, Status("shipped").Valid())
	require.False(t, Status("").Valid())
	require.False(t, Status("PENDING").Valid())
}

func TestStatus_CanTransition(t *testing.T) {
	require.True(t, StatusPending.CanTransition(StatusRequested))
	require.True(t, StatusPending.CanTransition(StatusPendingConfirmation))
	require.True(t, StatusPending.CanTransition(StatusCancelled))
	require.True(t, StatusRequested.CanTransition(StatusDelivered))
	require.True(t, StatusCompleted.CanTransition(StatusDelivered))

	// terminal states only allow re-assertion
	require.False(t, StatusDelivered.CanTransition(StatusPending))
	require.False(t, StatusCancelled.CanTransition(StatusPending))
	require.True(t, StatusDelivered.CanTransition(StatusDelivered))
	require.True(t, StatusCancelled.CanTransition(StatusCancelled))

	// nothing moves back to pending
	require.False(t, StatusRequested.CanTransition(StatusPending))

	// unknown targets never pass, even from the legacy empty state
	require.False(t, StatusPending.CanTransition(Status("shipped")))
	require.False(t, Status("").CanTransition(Status("shipped")))

	// legacy rows with an empty status may move anywhere valid
	require.True(t, Status("").CanTransition(StatusCompleted))
}
