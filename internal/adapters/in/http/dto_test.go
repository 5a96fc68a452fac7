package http

import (
	"errors"
	nethttp "net/http"
	"testing"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("delivery", "d-1"), nethttp.StatusNotFound},
		{"illegal transition", delivery.NewIllegalTransitionError(delivery.Assigned, delivery.Delivered), nethttp.StatusConflict},
		{"invalid state", delivery.ErrInvalidState, nethttp.StatusConflict},
		{"invalid timeline", delivery.ErrInvalidTimeline, nethttp.StatusConflict},
		{"over collection", delivery.NewOverCollectionError(3, 3), nethttp.StatusConflict},
		{"transient io", ports.NewTransientIOError("fetch stats", errors.New("503")), nethttp.StatusBadGateway},
		{"required value", errs.NewValueIsRequiredError("reason"), nethttp.StatusBadRequest},
		{"unknown", errors.New("boom"), nethttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
