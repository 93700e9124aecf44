package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
)

type fakeSource struct {
	snapshot *models.DashboardSnapshot
	err      error
	calls    int
}

func (f *fakeSource) Snapshot(context.Context, string) (*models.DashboardSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type memoryCacheRepo struct {
	mu      sync.Mutex
	items   map[string][]byte
	getErr  error
	setErr  error
	deleted []string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

func (m *memoryCacheRepo) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		m.deleted = append(m.deleted, key)
		delete(m.items, key)
	}
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.items {
		if key == pattern || (strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, prefix)) {
			delete(m.items, key)
		}
	}
	return nil
}

var errRedisDown = errors.New("redis: connection refused")

func sampleSnapshot() *models.DashboardSnapshot {
	return &models.DashboardSnapshot{
		TeacherName: "김선생",
		Progress: models.ProgressGuide{
			CurrentUnit:           "2. 머신러닝의 종류",
			RecommendedDate:       "2024-11-01 (3일 후)",
			RecommendedAssessment: "2단원 머신러닝 형성평가",
		},
		Metrics: []models.MetricCard{
			{Icon: "📝", Label: "평가 생성 빈도", Value: "주 2.3회", Detail: "이번 달 9개 생성"},
		},
		Units: []models.UnitRecord{
			{Name: "1단원: 인공지능의 이해", Status: models.UnitStatusCompleted, DiagnosticDone: true, FormativeDone: true, SummativeDone: true, LastAssessmentDate: "2024-09-15"},
			{Name: "3단원: 딥러닝 기초", Status: models.UnitStatusMissing, LastAssessmentDate: models.NoAssessmentDate},
		},
		TimeSlots: []models.TimeSlotCount{
			{Icon: "🌙", Label: "새벽 (00-06)", Count: 2},
			{Icon: "🌅", Label: "오전 (06-12)", Count: 15},
			{Icon: "☀️", Label: "오후 (12-18)", Count: 45},
			{Icon: "🌆", Label: "저녁 (18-24)", Count: 8},
		},
		Days: models.DayTotals{Weekday: 58, Weekend: 12},
		Activities: []models.ActivityRecord{
			{Timestamp: "2024-10-25 14:30", Description: `<strong>"2단원 머신러닝 형성평가"</strong> 생성`},
			{Timestamp: "2024-10-24 16:45", Description: `문항 <strong>5개</strong> 수정`},
			{Timestamp: "2024-10-23 10:20", Description: `<strong>"1단원 총괄평가"</strong> 결과 확인`},
			{Timestamp: "2024-10-22 09:15", Description: `학생들에게 평가 배포`},
			{Timestamp: "2024-10-21 15:00", Description: `새 문항 추가`},
			{Timestamp: "2024-10-20 11:00", Description: `대시보드 확인`},
			{Timestamp: "2024-10-19 13:40", Description: `<b>"3단원 진단평가"</b> 생성`},
		},
		Monthly: models.MonthlySeries{
			Label:  "평가 생성 수",
			Labels: []string{"7월", "8월", "9월", "10월", "11월", "12월"},
			Series: []int{3, 4, 5, 9, 7, 0},
		},
	}
}
