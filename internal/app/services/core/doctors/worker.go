package doctors

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCronSpec = "@hourly"
	leaderLockTTL    = 2 * time.Minute
)

// Worker keeps the unfiltered doctor listing cache warm. Only the instance
// holding the leader lock refreshes on a given tick.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	doctors contracts.DoctorUsecase
	stop    chan struct{}
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
	warmup  sync.WaitGroup
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, doctorUsecase contracts.DoctorUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, doctors: doctorUsecase, stop: make(chan struct{})}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Cache.DoctorCacheWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("doctors.worker: invalid cron spec, falling back to "+fallbackCronSpec,
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	// warm the cache right away instead of waiting for the first tick
	w.warmup.Add(1)
	go func() {
		defer w.warmup.Done()
		w.runOnce(w.runCtx)
	}()
}

// Stop waits for an in-flight refresh to finish.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
	w.warmup.Wait()
}

func (w *Worker) runOnce(ctx context.Context) {
	select {
	case <-w.stop:
		return
	default:
	}

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisDoctorCacheLeaderKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("doctors.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("doctors.worker: leader lock held by another instance")
		return
	}
	defer w.locker.Unlock(context.Background(), constvars.RedisDoctorCacheLeaderKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisDoctorCacheLeaderKey, token, leaderLockTTL); err != nil {
					w.log.Warn("doctors.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	start := time.Now()
	count, err := w.doctors.RefreshDirectoryCache(ctx)
	if err != nil {
		w.log.Warn("doctors.worker: directory refresh failed", zap.Error(err))
		return
	}
	w.log.Info("doctors.worker: directory cache refreshed",
		zap.Int(constvars.LoggingResponseCountKey, count),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
}
