package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expressMethod(t *testing.T, days int) *shippingmethod.Method {
	t.Helper()
	method, err := shippingmethod.NewMethod(
		kernel.NewUUID(),
		shippingmethod.KindExpress,
		"express delivery",
		days,
		decimal.NewFromFloat(100.00),
	)
	require.NoError(t, err)
	return method
}

func TestNewShipment(t *testing.T) {
	t.Run("computes_estimated_delivery_from_method", func(t *testing.T) {
		method := expressMethod(t, 2)
		shipDate := time.Date(2026, 6, 25, 14, 30, 0, 0, time.UTC)

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "ABCDEFGH123456789012", shipDate,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipDate, s.ShipDate())
		assert.Equal(t, shipDate.AddDate(0, 0, 2), s.EstimatedDeliveryDate())
		assert.True(t, s.MethodID().IsEqual(method.ID()))
	})

	t.Run("estimate_is_exact_regardless_of_clock", func(t *testing.T) {
		method := expressMethod(t, 7)
		for _, shipDate := range []time.Time{
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC),
		} {
			s, err := shipment.NewShipment(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				method, "", shipDate,
			)
			require.NoError(t, err)
			assert.Equal(t, shipDate.AddDate(0, 0, 7), s.EstimatedDeliveryDate())
		}
	})

	t.Run("generates_tracking_code_when_empty", func(t *testing.T) {
		method := expressMethod(t, 1)

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "", time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.Len(t, s.TrackingCode(), 20)
		assert.Regexp(t, `^[A-Z]{8}[0-9]{12}$`, s.TrackingCode())
	})

	t.Run("keeps_supplied_tracking_code", func(t *testing.T) {
		method := expressMethod(t, 1)

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "TRACK-001", time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.Equal(t, "TRACK-001", s.TrackingCode())
	})

	t.Run("rejects_short_tracking_code", func(t *testing.T) {
		method := expressMethod(t, 1)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "SHORT", time.Now().UTC(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_references", func(t *testing.T) {
		method := expressMethod(t, 1)
		var zero kernel.UUID

		_, err := shipment.NewShipment(
			zero, kernel.NewUUID(), kernel.NewUUID(),
			method, "", time.Now().UTC(),
		)
		require.Error(t, err)

		_, err = shipment.NewShipment(
			kernel.NewUUID(), zero, kernel.NewUUID(),
			method, "", time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_zero_ship_date", func(t *testing.T) {
		method := expressMethod(t, 1)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "", time.Time{},
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_method", func(t *testing.T) {
		var method shippingmethod.Method

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&method, "", time.Now().UTC(),
		)

		require.ErrorIs(t, err, shippingmethod.ErrMethodIsNotConstructed)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		method := expressMethod(t, 3)
		shipDate := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

		original, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			method, "", shipDate,
		)
		require.NoError(t, err)

		restored, err := shipment.RestoreShipment(
			original.ID(), original.OrderID(), original.AddressID(), original.MethodID(),
			original.TrackingCode(), original.ShipDate(), original.EstimatedDeliveryDate(),
		)
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, original.EstimatedDeliveryDate(), restored.EstimatedDeliveryDate())
	})

	t.Run("does_not_recompute_estimate", func(t *testing.T) {
		// Restoring trusts storage: a method change after creation must not
		// shift already-persisted estimates.
		shipDate := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		estimate := shipDate.AddDate(0, 0, 5)

		restored, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"ABCDEFGH123456789012", shipDate, estimate,
		)
		require.NoError(t, err)
		assert.Equal(t, estimate, restored.EstimatedDeliveryDate())
	})
}

func TestGenerateTrackingCode(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		for range 50 {
			assert.Regexp(t, `^[A-Z]{8}[0-9]{12}$`, shipment.GenerateTrackingCode())
		}
	})

	t.Run("not_constant", func(t *testing.T) {
		seen := map[string]bool{}
		for range 20 {
			seen[shipment.GenerateTrackingCode()] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestShipmentValidate(t *testing.T) {
	var s shipment.Shipment
	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}
