package guidingpath

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	requestAPIClientInstance contracts.RequestAPIClient
	onceRequestAPIClient     sync.Once
)

type requestAPIClient struct {
	*apiClient
}

func NewRequestAPIClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.RequestAPIClient {
	onceRequestAPIClient.Do(func() {
		client := &requestAPIClient{
			apiClient: newAPIClient(
				cfg.GuidingPath.ApiBaseUrl,
				time.Duration(cfg.GuidingPath.ApiTimeoutInSeconds)*time.Second,
				cfg.GuidingPath.ApiRequestsPerSecond,
				cfg.GuidingPath.ApiBurst,
				logger,
			),
		}
		requestAPIClientInstance = client
	})
	return requestAPIClientInstance
}

// DeleteRequest removes a referral/request once it has been turned into an appointment.
func (c *requestAPIClient) DeleteRequest(ctx context.Context, referralRequestID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("requestAPIClient.DeleteRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferralRequestIDKey, referralRequestID),
	)

	query := url.Values{}
	query.Set(constvars.GuidingPathQueryID, referralRequestID)

	err := c.do(ctx, constvars.MethodDelete, constvars.GuidingPathPathDeleteRequest, query, nil, constvars.ResourceRequest, nil)
	if err != nil {
		c.Log.Error("requestAPIClient.DeleteRequest error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("requestAPIClient.DeleteRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
