package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
)

// DefaultNotifyAt is offered until the teacher saves a reminder time.
const DefaultNotifyAt = "14:00"

// NotificationStore persists reminder-time preferences.
type NotificationStore interface {
	GetByTeacher(ctx context.Context, teacherID string) (*models.NotificationPreference, error)
	Upsert(ctx context.Context, pref *models.NotificationPreference) error
}

// NotificationService stores the reminder time picked in the dashboard dialog.
// The value is passed through as-is; its format belongs to the client widget.
type NotificationService struct {
	store     NotificationStore
	validator *validator.Validate
	logger    *zap.Logger
	defaultAt string
}

// NewNotificationService builds the service.
func NewNotificationService(store NotificationStore, validate *validator.Validate, defaultAt string, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(defaultAt) == "" {
		defaultAt = DefaultNotifyAt
	}
	return &NotificationService{store: store, validator: validate, logger: logger, defaultAt: defaultAt}
}

// Get returns the stored reminder time or the default.
func (s *NotificationService) Get(ctx context.Context, teacherID string) (*dto.NotificationTimeResponse, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacherId is required")
	}
	pref, err := s.store.GetByTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: s.defaultAt, IsDefault: true}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notification time")
	}
	return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: pref.NotifyAt}, nil
}

// Save stores req.NotifyAt unmodified.
func (s *NotificationService) Save(ctx context.Context, teacherID string, req dto.NotificationTimeRequest) (*dto.NotificationTimeResponse, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacherId is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	pref := &models.NotificationPreference{TeacherID: teacherID, NotifyAt: req.NotifyAt}
	if err := s.store.Upsert(ctx, pref); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save notification time")
	}
	s.logger.Info("notification time saved", zap.String("teacher_id", teacherID), zap.String("notify_at", pref.NotifyAt))
	return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: pref.NotifyAt}, nil
}
