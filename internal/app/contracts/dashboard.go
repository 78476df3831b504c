package contracts

import (
	"context"
	"guidingpath-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetReport(ctx context.Context) (*responses.DashboardReport, error)
}
