package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/aidt-dashboard-api/internal/models"
)

// NotificationRepository persists reminder times chosen by teachers.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository constructs the repository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// GetByTeacher returns the stored preference or sql.ErrNoRows.
func (r *NotificationRepository) GetByTeacher(ctx context.Context, teacherID string) (*models.NotificationPreference, error) {
	const query = `SELECT id, teacher_id, notify_at, created_at, updated_at FROM notification_preferences WHERE teacher_id = $1`
	var pref models.NotificationPreference
	if err := r.db.GetContext(ctx, &pref, query, teacherID); err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or replaces the teacher's reminder time.
func (r *NotificationRepository) Upsert(ctx context.Context, pref *models.NotificationPreference) error {
	stampPreference(pref, time.Now().UTC())
	const query = `INSERT INTO notification_preferences (id, teacher_id, notify_at, created_at, updated_at)
		VALUES (:id, :teacher_id, :notify_at, :created_at, :updated_at)
		ON CONFLICT (teacher_id) DO UPDATE
		SET notify_at = EXCLUDED.notify_at,
		    updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, pref); err != nil {
		return fmt.Errorf("upsert notification preference: %w", err)
	}
	return nil
}

// MemoryNotificationStore keeps reminder times in process memory. Used with the sample data source.
type MemoryNotificationStore struct {
	mu    sync.RWMutex
	prefs map[string]models.NotificationPreference
}

// NewMemoryNotificationStore constructs an empty store.
func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{prefs: make(map[string]models.NotificationPreference)}
}

// GetByTeacher returns the stored preference or sql.ErrNoRows.
func (s *MemoryNotificationStore) GetByTeacher(_ context.Context, teacherID string) (*models.NotificationPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pref, ok := s.prefs[teacherID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &pref, nil
}

// Upsert stores the preference, keeping the original id and creation time.
func (s *MemoryNotificationStore) Upsert(_ context.Context, pref *models.NotificationPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.prefs[pref.TeacherID]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	}
	stampPreference(pref, time.Now().UTC())
	s.prefs[pref.TeacherID] = *pref
	return nil
}

func stampPreference(pref *models.NotificationPreference, now time.Time) {
	if pref.ID == "" {
		pref.ID = uuid.NewString()
	}
	if pref.CreatedAt.IsZero() {
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
}
