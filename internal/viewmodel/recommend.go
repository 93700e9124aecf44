package viewmodel

import (
	"sort"
	"strings"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
)

// MaxRecommendedActions bounds the next-action feed.
const MaxRecommendedActions = 3

// Ranker names accepted by NewRanker.
const (
	RankerStatic    = "static"
	RankerFrequency = "frequency"
)

// ActionRanker selects the recommended next actions for a classified activity feed.
type ActionRanker interface {
	Rank(activities []dto.ActivityView) []dto.RecommendedAction
}

// NewRanker resolves a ranker by name, falling back to the static list.
func NewRanker(name string) ActionRanker {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RankerFrequency:
		return FrequencyRanker{}
	default:
		return StaticRanker{}
	}
}

var staticActions = []dto.RecommendedAction{
	{Icon: "📝", Text: "2단원 형성평가 생성", TargetRef: "/assessments/new?unit=2&type=formative", AccentColor: "#6366f1"},
	{Icon: "✏️", Text: "문항 수정하기", TargetRef: "/items/edit", AccentColor: "#ec4899"},
	{Icon: "📊", Text: "최근 평가 결과 분석", TargetRef: "/results/recent", AccentColor: "#10b981"},
}

// StaticRanker returns the fixed action list regardless of the feed.
type StaticRanker struct{}

// Rank implements ActionRanker.
func (StaticRanker) Rank([]dto.ActivityView) []dto.RecommendedAction {
	return copyActions(staticActions)
}

var categoryActions = map[dto.QuickLinkCategory]dto.RecommendedAction{
	dto.QuickLinkManage:  {Icon: "📝", Text: "새 평가 생성", TargetRef: "/assessments/new", AccentColor: "#6366f1"},
	dto.QuickLinkEdit:    {Icon: "✏️", Text: "문항 수정하기", TargetRef: "/items/edit", AccentColor: "#ec4899"},
	dto.QuickLinkResults: {Icon: "📊", Text: "최근 평가 결과 분석", TargetRef: "/results/recent", AccentColor: "#10b981"},
	dto.QuickLinkDeploy:  {Icon: "📤", Text: "평가 배포하기", TargetRef: "/assessments/deploy", AccentColor: "#f59e0b"},
	dto.QuickLinkAdd:     {Icon: "➕", Text: "문항 추가하기", TargetRef: "/items/new", AccentColor: "#0ea5e9"},
}

// FrequencyRanker orders actions by how often their quick-link category appears in
// the feed. Ties follow quick-link precedence; the static list pads short results.
type FrequencyRanker struct{}

// Rank implements ActionRanker.
func (FrequencyRanker) Rank(activities []dto.ActivityView) []dto.RecommendedAction {
	counts := make(map[dto.QuickLinkCategory]int)
	for _, activity := range activities {
		if _, ok := categoryActions[activity.QuickLink.Category]; ok {
			counts[activity.QuickLink.Category]++
		}
	}
	categories := make([]dto.QuickLinkCategory, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] == counts[categories[j]] {
			return categoryRank(categories[i]) < categoryRank(categories[j])
		}
		return counts[categories[i]] > counts[categories[j]]
	})

	actions := make([]dto.RecommendedAction, 0, MaxRecommendedActions)
	used := make(map[string]struct{}, MaxRecommendedActions)
	push := func(action dto.RecommendedAction) {
		if len(actions) >= MaxRecommendedActions {
			return
		}
		if _, dup := used[action.AccentColor]; dup {
			return
		}
		used[action.AccentColor] = struct{}{}
		actions = append(actions, action)
	}
	for _, category := range categories {
		push(categoryActions[category])
	}
	for _, action := range staticActions {
		push(action)
	}
	return actions
}

func copyActions(actions []dto.RecommendedAction) []dto.RecommendedAction {
	out := make([]dto.RecommendedAction, len(actions))
	copy(out, actions)
	return out
}
