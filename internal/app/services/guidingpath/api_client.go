package guidingpath

import (
	"bytes"
	"context"
	"fmt"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// errorBody is the shape of every non-2xx response of the Guiding Path API.
type errorBody struct {
	Error string `json:"error"`
}

// apiClient holds what the resource clients share: the base URL, a bounded
// http.Client and a token bucket so bursts from this service do not flood
// the upstream.
type apiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func newAPIClient(baseUrl string, timeout time.Duration, requestsPerSecond float64, burst int, logger *zap.Logger) *apiClient {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &apiClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

// do sends one request and decodes a 2xx body into out when out is not nil.
// Non-2xx responses are turned into exceptions.ErrUpstreamResponse carrying
// the upstream "error" message.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body interface{}, resource string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := c.BaseUrl + path
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("apiClient.do error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamRateLimitWait(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err, resource)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("apiClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return exceptions.ErrServerDeadlineExceeded(ctxErr)
		}
		return exceptions.ErrSendHTTPRequest(err, resource)
	}
	defer resp.Body.Close()

	c.Log.Info("apiClient.do upstream responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
		zap.Int(constvars.LoggingUpstreamStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
	)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeUpstreamResponse(err, resource)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		var upstreamErr errorBody
		_ = json.Unmarshal(bodyBytes, &upstreamErr)
		err := fmt.Errorf("%s %s: %s", method, path, strings.TrimSpace(string(bodyBytes)))
		return exceptions.ErrUpstreamResponse(err, resource, resp.StatusCode, upstreamErr.Error)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return exceptions.ErrDecodeUpstreamResponse(err, resource)
	}
	return nil
}
