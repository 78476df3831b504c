package exceptions

import (
	"errors"
	"fmt"
	"guidingpath-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError_KeepsFirstStatus(t *testing.T) {
	cause := errors.New("connection refused")

	first := ErrSendHTTPRequest(cause, constvars.ResourceAppointment)
	require.Equal(t, constvars.StatusBadGateway, first.StatusCode)
	require.Len(t, first.Locations, 1)

	wrapped := ErrServerDeadlineExceeded(first)

	assert.Same(t, first, wrapped)
	assert.Equal(t, constvars.StatusBadGateway, wrapped.StatusCode)
	assert.Len(t, wrapped.Locations, 2)
	assert.ErrorIs(t, wrapped, cause)
}

func TestBuildNewCustomError_WrapsFmtErrors(t *testing.T) {
	inner := ErrSlotOccupied(nil, "09:00 AM", "2024-06-13")
	outer := fmt.Errorf("booking: %w", inner)

	got := ErrInvalidFormat(outer, "body")

	assert.Equal(t, constvars.StatusConflict, got.StatusCode)
	assert.Equal(t, constvars.ErrClientSlotOccupied, got.ClientMessage)
}

func TestErrUpstreamResponse(t *testing.T) {
	t.Run("server message becomes the client message", func(t *testing.T) {
		err := ErrUpstreamResponse(nil, constvars.ResourceAppointment, constvars.StatusConflict, "Slot already taken")

		assert.Equal(t, constvars.StatusConflict, err.StatusCode)
		assert.Equal(t, "Slot already taken", err.ClientMessage)
	})

	t.Run("empty message falls back", func(t *testing.T) {
		err := ErrUpstreamResponse(nil, constvars.ResourceAppointment, constvars.StatusBadRequest, "")

		assert.Equal(t, constvars.ErrClientCannotProcessRequest, err.ClientMessage)
	})

	t.Run("non error status becomes bad gateway", func(t *testing.T) {
		err := ErrUpstreamResponse(nil, constvars.ResourceAppointment, constvars.StatusOK, "odd")

		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Role string `validate:"required,oneof=counselor teacher student"`
	}
	validate := validator.New()

	err := validate.Struct(payload{})
	assert.Equal(t, "role is required", FormatFirstValidationError(err))

	err = validate.Struct(payload{Role: "parent"})
	assert.Equal(t, "role must be one of [counselor, teacher, student]", FormatFirstValidationError(err))

	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("plain")))
}
