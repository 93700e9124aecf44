package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	"github.com/noah-isme/aidt-dashboard-api/internal/viewmodel"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
)

// DashboardSource supplies the raw records behind one teacher dashboard.
type DashboardSource interface {
	Snapshot(ctx context.Context, teacherID string) (*models.DashboardSnapshot, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL            time.Duration
	LoadTimeout         time.Duration
	ActivityPageSize    int
	MaxActivityPageSize int
}

// DashboardService loads raw records and hands them to the view-model assembler.
type DashboardService struct {
	source    DashboardSource
	assembler *viewmodel.Assembler
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       DashboardServiceConfig
	inflight  singleflight.Group
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Source  DashboardSource
	Ranker  viewmodel.ActionRanker
	Cache   *CacheService
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 10 * time.Second
	}
	if cfg.ActivityPageSize <= 0 {
		cfg.ActivityPageSize = 5
	}
	if cfg.MaxActivityPageSize <= 0 {
		cfg.MaxActivityPageSize = 100
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		source:    params.Source,
		assembler: viewmodel.NewAssembler(params.Ranker),
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

// Teacher returns the teacher's dashboard view-model and whether it came from cache.
func (s *DashboardService) Teacher(ctx context.Context, teacherID string) (*dto.DashboardViewModel, bool, error) {
	teacherID = strings.TrimSpace(teacherID)
	if teacherID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "teacherId is required")
	}
	key := dashboardCacheKey(teacherID)
	if vm, hit, err := s.tryCache(ctx, key); err != nil {
		return nil, false, err
	} else if hit {
		return vm, true, nil
	}

	// Concurrent misses for the same teacher share one load and assembly. The load
	// is detached from the first caller so its cancellation does not fail the others.
	result, err, _ := s.inflight.Do(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.LoadTimeout)
		defer cancel()
		vm, err := s.compose(loadCtx, teacherID)
		if err != nil {
			return nil, err
		}
		s.persistCache(loadCtx, key, vm)
		return vm, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.(*dto.DashboardViewModel), false, nil
}

// Refresh drops any cached view-model for the teacher and assembles a new one.
func (s *DashboardService) Refresh(ctx context.Context, teacherID string) (*dto.DashboardViewModel, error) {
	teacherID = strings.TrimSpace(teacherID)
	if teacherID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacherId is required")
	}
	key := dashboardCacheKey(teacherID)
	s.inflight.Forget(key)
	if s.cache != nil {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("dashboard cache invalidate failed", zap.String("teacher_id", teacherID), zap.Error(err))
		}
	}
	vm, err := s.compose(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	s.persistCache(ctx, key, vm)
	return vm, nil
}

// Activities pages through the classified activity feed of the dashboard.
func (s *DashboardService) Activities(ctx context.Context, teacherID string, page, pageSize int) ([]dto.ActivityView, *models.Pagination, bool, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.ActivityPageSize
	}
	if pageSize > s.cfg.MaxActivityPageSize {
		pageSize = s.cfg.MaxActivityPageSize
	}
	vm, hit, err := s.Teacher(ctx, teacherID)
	if err != nil {
		return nil, nil, false, err
	}
	total := len(vm.Activities)
	start := total
	if page-1 <= total/pageSize {
		start = (page - 1) * pageSize
		if start > total {
			start = total
		}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	items := make([]dto.ActivityView, end-start)
	copy(items, vm.Activities[start:end])
	return items, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, hit, nil
}

func (s *DashboardService) compose(ctx context.Context, teacherID string) (*dto.DashboardViewModel, error) {
	if s.source == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "dashboard data source unavailable")
	}
	start := time.Now()
	snapshot, err := s.source.Snapshot(ctx, teacherID)
	if err != nil {
		s.metrics.ObserveAssembly(AssemblySourceError, time.Since(start))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard data")
	}

	vm, err := s.assembler.Assemble(viewmodel.InputFromSnapshot(*snapshot))
	if err != nil {
		s.metrics.ObserveAssembly(AssemblyIntegrityError, time.Since(start))
		s.logger.Warn("dashboard data integrity violation", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveAssembly(AssemblyOK, time.Since(start))
	for _, activity := range vm.Activities {
		s.metrics.ObserveQuickLink(string(activity.QuickLink.Category))
	}
	return &vm, nil
}

func (s *DashboardService) tryCache(ctx context.Context, key string) (*dto.DashboardViewModel, bool, error) {
	if s.cache == nil {
		return nil, false, nil
	}
	var cached dto.DashboardViewModel
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, false, err
	}
	if hit {
		return &cached, true, nil
	}
	return nil, false, nil
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func dashboardCacheKey(teacherID string) string {
	return Key(DashboardCacheNamespace, teacherID)
}
