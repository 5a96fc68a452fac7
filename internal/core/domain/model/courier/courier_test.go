package courier_test

import (
	"testing"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("fresh_courier_is_available", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alex Morgan", "+31-6-5550001")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Alex Morgan", c.Name())
		assert.Equal(t, "+31-6-5550001", c.Phone())
		assert.Zero(t, c.ActiveDeliveries())
		assert.Equal(t, courier.Available, c.Availability())
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "+31-6-5550001")
		require.ErrorIs(t, err, courier.ErrNameIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Alex Morgan", "")
		require.ErrorIs(t, err, courier.ErrPhoneIsRequired)

		_, err = courier.NewCourier(kernel.UUID{}, "Alex Morgan", "+31-6-5550001")
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("carries_derived_count", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Alex Morgan", "+31-6-5550001", 3)

		require.NoError(t, err)
		assert.Equal(t, 3, c.ActiveDeliveries())
		assert.Equal(t, courier.Busy, c.Availability())
	})

	t.Run("rejects_negative_count", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "Alex Morgan", "+31-6-5550001", -1)
		require.Error(t, err)
	})
}

func TestAvailabilityFor(t *testing.T) {
	cases := []struct {
		active int
		tier   courier.Availability
	}{
		{0, courier.Available},
		{1, courier.Busy},
		{4, courier.Busy},
		{5, courier.Overloaded},
		{12, courier.Overloaded},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.tier, courier.AvailabilityFor(tc.active), "active=%d", tc.active)
	}
}

func TestAvailability_String(t *testing.T) {
	assert.Equal(t, "available", courier.Available.String())
	assert.Equal(t, "busy", courier.Busy.String())
	assert.Equal(t, "overloaded", courier.Overloaded.String())
	assert.Equal(t, "unknown", courier.Availability(9).String())
}
