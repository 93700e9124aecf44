package repository

import (
	"context"

	"github.com/noah-isme/aidt-dashboard-api/internal/models"
)

// SampleDashboardSource serves the built-in demo dataset for any teacher.
type SampleDashboardSource struct{}

// NewSampleDashboardSource constructs the demo source.
func NewSampleDashboardSource() *SampleDashboardSource {
	return &SampleDashboardSource{}
}

// Snapshot returns a fresh copy of the demo records on every call.
func (s *SampleDashboardSource) Snapshot(ctx context.Context, teacherID string) (*models.DashboardSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slots := emptyTimeSlots()
	for i, count := range []int{2, 15, 45, 8} {
		slots[i].Count = count
	}
	return &models.DashboardSnapshot{
		TeacherName: "김선생",
		Progress: models.ProgressGuide{
			CurrentUnit:           "2. 머신러닝의 종류",
			RecommendedDate:       "2024-11-01 (3일 후)",
			RecommendedAssessment: "2단원 머신러닝 형성평가",
		},
		Metrics: []models.MetricCard{
			{Icon: "📝", Label: "평가 생성 빈도", Value: "주 2.3회", Detail: "이번 달 9개 생성"},
			{Icon: "✏️", Label: "문항 재구성률", Value: "45.5%", Detail: "100개 중 45개 수정"},
			{Icon: "📊", Label: "배포 규칙성", Value: "⭐⭐⭐⭐", Detail: "모든 단원 배포 완료"},
		},
		Units: []models.UnitRecord{
			{Name: "1단원: 인공지능의 이해", Status: models.UnitStatusCompleted, StatusLabel: "완료", DiagnosticDone: true, FormativeDone: true, SummativeDone: true, LastAssessmentDate: "2024-09-15"},
			{Name: "2단원: 머신러닝의 종류", Status: models.UnitStatusPending, StatusLabel: "진행중", DiagnosticDone: true, LastAssessmentDate: "2024-10-20"},
			{Name: "3단원: 딥러닝 기초", Status: models.UnitStatusMissing, StatusLabel: "미배포", LastAssessmentDate: models.NoAssessmentDate},
			{Name: "4단원: AI 윤리와 책임", Status: models.UnitStatusPending, StatusLabel: "권장 배포", LastAssessmentDate: "권장: 2024-11-01"},
		},
		TimeSlots: slots,
		Days:      models.DayTotals{Weekday: 58, Weekend: 12},
		Activities: []models.ActivityRecord{
			{Timestamp: "2024-10-25 14:30", Description: `<strong>"2단원 머신러닝 형성평가"</strong> 생성`},
			{Timestamp: "2024-10-24 16:45", Description: `문항 <strong>5개</strong> 수정`},
			{Timestamp: "2024-10-23 09:20", Description: `<strong>"1단원 총괄평가"</strong> 결과 조회`},
			{Timestamp: "2024-10-22 15:10", Description: `<strong>"2단원 진단평가"</strong> 배포`},
			{Timestamp: "2024-10-21 11:30", Description: `문항 <strong>3개</strong> 추가`},
			{Timestamp: "2024-10-20 13:45", Description: `<strong>"3단원 딥러닝 평가"</strong> 생성`},
			{Timestamp: "2024-10-19 10:15", Description: `문항 <strong>2개</strong> 수정`},
			{Timestamp: "2024-10-18 14:20", Description: `<strong>"1단원 형성평가"</strong> 결과 조회`},
			{Timestamp: "2024-10-17 16:00", Description: `<strong>"4단원 윤리 평가"</strong> 배포`},
			{Timestamp: "2024-10-16 09:30", Description: `문항 <strong>7개</strong> 추가`},
		},
		Monthly: models.MonthlySeries{
			Label:  monthlySeriesLabel,
			Labels: []string{"7월", "8월", "9월", "10월", "11월", "12월"},
			Series: []int{3, 4, 5, 9, 7, 0},
		},
	}, nil
}
