package controllers

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const defaultRequestTimeout = 10 * time.Second

// newRequestContext detaches from the client connection, keeping only the
// request id, and bounds the call with the configured timeout.
func newRequestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(utils.DetachedContext(r.Context()), timeout)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrRequestBodyTooLarge(err)
	}
	return exceptions.ErrCannotParseJSON(err)
}

func usecaseError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
