package worker

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/responses"
	"guidingpath-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCronSpec = "@daily"
	leaderLockTTL    = 2 * time.Minute
)

// TodayCacheWarmer rebuilds the cached list of today's appointments on a
// cron schedule so the first dashboard visit of the day is served warm.
// Only the instance holding the leader lock does the work.
type TodayCacheWarmer struct {
	log                *zap.Logger
	cfg                *config.InternalConfig
	locker             contracts.LockerService
	cache              contracts.Cache
	appointmentUsecase contracts.AppointmentUsecase
	now                func() time.Time
	cron               *cron.Cron
	runCtx             context.Context
	cancel             context.CancelFunc
}

func NewTodayCacheWarmer(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	todayCache contracts.Cache,
	appointmentUsecase contracts.AppointmentUsecase,
) *TodayCacheWarmer {
	return &TodayCacheWarmer{
		log:                log,
		cfg:                cfg,
		locker:             lockerSvc,
		cache:              todayCache,
		appointmentUsecase: appointmentUsecase,
		now:                time.Now,
	}
}

func (w *TodayCacheWarmer) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New(cron.WithLocation(time.Local))
	spec := w.cfg.Worker.TodayCacheCronSpec
	_, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("worker.TodayCacheWarmer failed to schedule with provided cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New(cron.WithLocation(time.Local))
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("worker.TodayCacheWarmer started",
		zap.String(constvars.LoggingCronSpecKey, spec),
	)
}

// Stop cancels in-flight work and waits for a running job to return.
func (w *TodayCacheWarmer) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// RunOnce drops today's cache entry and reloads it through the usecase.
func (w *TodayCacheWarmer) RunOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.RequestIDFromContext(ctx)

	acquired, token, err := w.locker.TryLock(ctx, constvars.LockKeyTodayCacheWarmer, leaderLockTTL)
	if err != nil {
		w.log.Warn("worker.TodayCacheWarmer leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("worker.TodayCacheWarmer leader lock not acquired; another instance is running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.LockKeyTodayCacheWarmer, token)

	key := cache.TodayAppointmentsKey(w.now())
	if err := w.cache.Delete(ctx, key); err != nil {
		w.log.Warn("worker.TodayCacheWarmer error dropping cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}

	var today *responses.TodayAppointments
	err = utils.LogOperation(w.log, "worker.TodayCacheWarmer.FindToday", requestID, func() error {
		var findErr error
		today, findErr = w.appointmentUsecase.FindToday(ctx)
		return findErr
	})
	if err != nil {
		return
	}

	w.log.Info("worker.TodayCacheWarmer warmed today cache",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Int(constvars.LoggingAppointmentCountKey, len(today.Appointments)),
	)
}
