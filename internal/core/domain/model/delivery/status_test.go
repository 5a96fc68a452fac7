package delivery_test

import (
	"testing"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[delivery.Status]string{
		delivery.Unknown:   "unknown",
		delivery.Assigned:  "assigned",
		delivery.PickedUp:  "picked_up",
		delivery.InTransit: "in_transit",
		delivery.Delivered: "delivered",
		delivery.Failed:    "failed",
		delivery.Status(99): "unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_valid_names", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Assigned, delivery.PickedUp, delivery.InTransit,
			delivery.Delivered, delivery.Failed,
		} {
			parsed, err := delivery.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := delivery.StatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, delivery.Assigned.Validate())
	require.NoError(t, delivery.Failed.Validate())
	require.Error(t, delivery.Unknown.Validate())
	require.Error(t, delivery.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Failed.IsTerminal())
	assert.False(t, delivery.Assigned.IsTerminal())
	assert.False(t, delivery.PickedUp.IsTerminal())
	assert.False(t, delivery.InTransit.IsTerminal())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, delivery.Assigned.IsActive())
	assert.True(t, delivery.PickedUp.IsActive())
	assert.True(t, delivery.InTransit.IsActive())
	assert.False(t, delivery.Delivered.IsActive())
	assert.False(t, delivery.Failed.IsActive())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("happy_path_is_a_strict_sequence", func(t *testing.T) {
		s, err := delivery.Assigned.Pickup()
		require.NoError(t, err)
		require.Equal(t, delivery.PickedUp, s)

		s, err = s.Transit()
		require.NoError(t, err)
		require.Equal(t, delivery.InTransit, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		require.Equal(t, delivery.Delivered, s)
	})

	t.Run("no_skipping_or_reversing", func(t *testing.T) {
		_, err := delivery.Assigned.Transit()
		require.ErrorIs(t, err, delivery.ErrIllegalTransition)

		_, err = delivery.Assigned.Deliver()
		require.ErrorIs(t, err, delivery.ErrIllegalTransition)

		_, err = delivery.InTransit.Pickup()
		require.ErrorIs(t, err, delivery.ErrIllegalTransition)

		_, err = delivery.Delivered.Pickup()
		require.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})

	t.Run("fail_is_reachable_from_any_non_terminal_state", func(t *testing.T) {
		for _, from := range []delivery.Status{
			delivery.Assigned, delivery.PickedUp, delivery.InTransit,
		} {
			s, err := from.Fail()
			require.NoError(t, err)
			assert.Equal(t, delivery.Failed, s)
		}
	})

	t.Run("terminal_states_accept_nothing", func(t *testing.T) {
		for _, from := range []delivery.Status{delivery.Delivered, delivery.Failed} {
			_, err := from.Pickup()
			require.ErrorIs(t, err, delivery.ErrIllegalTransition)

			_, err = from.Transit()
			require.ErrorIs(t, err, delivery.ErrIllegalTransition)

			_, err = from.Deliver()
			require.ErrorIs(t, err, delivery.ErrIllegalTransition)

			_, err = from.Fail()
			require.ErrorIs(t, err, delivery.ErrIllegalTransition)
		}
	})
}

func TestIllegalTransitionError_Message(t *testing.T) {
	err := delivery.NewIllegalTransitionError(delivery.Assigned, delivery.Delivered)

	assert.Equal(t, "illegal status transition: assigned -> delivered", err.Error())
	assert.Equal(t, delivery.ErrIllegalTransition, err.Unwrap())
}
