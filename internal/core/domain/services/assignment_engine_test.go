package services_test

import (
	"testing"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourierWithLoad(t *testing.T, name string, active int) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), name, "+31-6-5550000", active)
	require.NoError(t, err)
	return c
}

func newAssignedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, delivery.OrderSnapshot{})
	require.NoError(t, err)
	return d
}

func TestAssignmentEngine_Assign(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("applies_operator_choice", func(t *testing.T) {
		d := newAssignedDelivery(t)
		c := newCourierWithLoad(t, "Alex", 2)

		require.NoError(t, engine.Assign(d, c))
		assert.True(t, d.Courier().IsEqual(c.ID()))
	})

	t.Run("keeps_delivery_state_on_reassignment", func(t *testing.T) {
		d := newAssignedDelivery(t)
		require.NoError(t, d.RecordCollection())
		c := newCourierWithLoad(t, "Alex", 0)

		require.NoError(t, engine.Assign(d, c))

		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Equal(t, 1, d.CollectedProducts())
	})

	t.Run("rejects_terminal_delivery", func(t *testing.T) {
		d := newAssignedDelivery(t)
		require.NoError(t, d.Fail("lost"))
		c := newCourierWithLoad(t, "Alex", 0)

		require.ErrorIs(t, engine.Assign(d, c), delivery.ErrInvalidState)
	})

	t.Run("rejects_unconstructed_aggregates", func(t *testing.T) {
		var zeroDelivery delivery.Delivery
		var zeroCourier courier.Courier

		require.ErrorIs(t,
			engine.Assign(&zeroDelivery, newCourierWithLoad(t, "Alex", 0)),
			delivery.ErrDeliveryIsNotConstructed)
		require.ErrorIs(t,
			engine.Assign(newAssignedDelivery(t), &zeroCourier),
			courier.ErrCourierIsNotConstructed)
	})
}

func TestAssignmentEngine_Suggest(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("ranks_ascending_by_workload", func(t *testing.T) {
		overloaded := newCourierWithLoad(t, "Overloaded", 7)
		idle := newCourierWithLoad(t, "Idle", 0)
		busy := newCourierWithLoad(t, "Busy", 2)

		ranked := engine.Suggest([]*courier.Courier{overloaded, idle, busy})

		require.Len(t, ranked, 3)
		assert.Equal(t, "Idle", ranked[0].Name())
		assert.Equal(t, "Busy", ranked[1].Name())
		assert.Equal(t, "Overloaded", ranked[2].Name())
	})

	t.Run("is_deterministic_on_equal_workload", func(t *testing.T) {
		a := newCourierWithLoad(t, "A", 1)
		b := newCourierWithLoad(t, "B", 1)

		first := engine.Suggest([]*courier.Courier{a, b})
		second := engine.Suggest([]*courier.Courier{b, a})

		assert.True(t, first[0].IsEqual(second[0]))
		assert.True(t, first[1].IsEqual(second[1]))
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		a := newCourierWithLoad(t, "A", 5)
		b := newCourierWithLoad(t, "B", 0)
		input := []*courier.Courier{a, b}

		_ = engine.Suggest(input)

		assert.Same(t, a, input[0])
		assert.Same(t, b, input[1])
	})
}
