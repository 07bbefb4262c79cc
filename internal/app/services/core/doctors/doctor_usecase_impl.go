package doctors

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/core/chambertime"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorBackendClient contracts.DoctorBackendClient
	RedisRepository     contracts.RedisRepository
	SessionService      contracts.SessionService
	Resolver            *chambertime.Resolver
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorBackendClient contracts.DoctorBackendClient,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = newDoctorUsecase(doctorBackendClient, redisRepository, sessionService, internalConfig, logger, time.Now)
	})
	return doctorUsecaseInstance
}

func newDoctorUsecase(
	doctorBackendClient contracts.DoctorBackendClient,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	now func() time.Time,
) *doctorUsecase {
	return &doctorUsecase{
		DoctorBackendClient: doctorBackendClient,
		RedisRepository:     redisRepository,
		SessionService:      sessionService,
		Resolver:            chambertime.NewResolver(now),
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 now,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, sessionData string, query *requests.DoctorQuery) ([]models.Doctor, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &requests.DoctorQuery{}
	}

	doctors, err := uc.loadDirectory(ctx, session.BackendToken, query.Specialization)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error loading doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	specialization := strings.TrimSpace(query.Specialization)
	doctors = utils.Filter(doctors, func(doctor models.Doctor) bool {
		if specialization != "" && !strings.EqualFold(doctor.Specialization, specialization) {
			return false
		}
		return utils.ContainsFold(query.Search, doctor.Name, doctor.Specialization)
	})

	page, total := utils.Paginate(doctors, &query.Pagination)

	uc.Log.Info("doctorUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(page)),
	)
	return page, total, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, sessionData, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.loadDoctor(ctx, session.BackendToken, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctor error loading doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.GetDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctor, nil
}

// GetBookingOptions resolves the chamber time options offered for doctorID
// on date. An empty date means today.
func (uc *doctorUsecase) GetBookingOptions(ctx context.Context, sessionData, doctorID, date string) (*responses.BookingOptions, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetBookingOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	candidateDate, err := utils.ParseDate(date, time.Local)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if candidateDate.IsZero() {
		candidateDate = uc.now().In(time.Local)
	}

	doctor, err := uc.loadDoctor(ctx, session.BackendToken, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetBookingOptions error loading doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	resolution := uc.Resolver.ResolveDetailed(doctor.ChamberTime, candidateDate)
	options := &responses.BookingOptions{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       candidateDate.Format(constvars.AppDateFormat),
		Weekday:    resolution.Weekday,
		Fallback:   resolution.Fallback,
		Selectable: len(resolution.Options) > 0,
		Options:    resolution.Options,
	}
	switch {
	case !options.Selectable:
		options.Message = constvars.NoChamberTimesAvailableMessage
	case resolution.Fallback:
		options.Message = fmt.Sprintf(constvars.ChamberTimesFromOtherWeekdayMessage, resolution.Weekday)
	}

	uc.Log.Info("doctorUsecase.GetBookingOptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingWeekdayKey, resolution.Weekday),
		zap.Bool(constvars.LoggingFallbackKey, resolution.Fallback),
		zap.Int(constvars.LoggingOptionCountKey, len(resolution.Options)),
	)
	return options, nil
}

func (uc *doctorUsecase) RefreshDirectoryCache(ctx context.Context) (int, error) {
	doctors, err := uc.DoctorBackendClient.ListDoctors(ctx, uc.InternalConfig.Backend.ServiceToken, &requests.BackendDoctorQuery{})
	if err != nil {
		return 0, err
	}
	if err := uc.RedisRepository.Set(ctx, directoryCacheKey(""), doctors, uc.cacheTTL()); err != nil {
		return 0, err
	}
	return len(doctors), nil
}

// loadDirectory reads the doctor listing through the cache. Cache failures
// fall through to the backend.
func (uc *doctorUsecase) loadDirectory(ctx context.Context, token, specialization string) ([]models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := directoryCacheKey(specialization)

	var doctors []models.Doctor
	if uc.readCache(ctx, cacheKey, &doctors) {
		return doctors, nil
	}

	doctors, err := uc.DoctorBackendClient.ListDoctors(ctx, token, &requests.BackendDoctorQuery{
		Specialization: strings.TrimSpace(specialization),
	})
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, doctors, uc.cacheTTL()); err != nil {
		uc.Log.Warn("doctorUsecase.loadDirectory error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return doctors, nil
}

func (uc *doctorUsecase) loadDoctor(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := fmt.Sprintf(constvars.RedisDoctorDetailKeyFormat, doctorID)

	doctor := new(models.Doctor)
	if uc.readCache(ctx, cacheKey, doctor) {
		return doctor, nil
	}

	doctor, err := uc.DoctorBackendClient.FindDoctorByID(ctx, token, doctorID)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, doctor, uc.cacheTTL()); err != nil {
		uc.Log.Warn("doctorUsecase.loadDoctor error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return doctor, nil
}

func (uc *doctorUsecase) readCache(ctx context.Context, cacheKey string, out interface{}) bool {
	requestID := utils.GetRequestID(ctx)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("doctorUsecase.readCache error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return false
	}
	if cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		uc.Log.Warn("doctorUsecase.readCache discarding malformed cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return false
	}

	uc.Log.Debug("doctorUsecase.readCache hit",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, cacheKey),
		zap.Bool(constvars.LoggingCacheHitKey, true),
	)
	return true
}

func (uc *doctorUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Cache.DoctorsTTLInSeconds) * time.Second
}

func directoryCacheKey(specialization string) string {
	specialization = strings.ToLower(strings.TrimSpace(specialization))
	if specialization == "" {
		return fmt.Sprintf(constvars.RedisDoctorListKeyFormat, constvars.RedisDoctorListAllCacheHash)
	}
	return fmt.Sprintf(constvars.RedisDoctorListKeyFormat, utils.HashCacheKey(specialization))
}
