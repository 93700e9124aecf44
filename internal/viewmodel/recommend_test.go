package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
)

func feed(categories ...dto.QuickLinkCategory) []dto.ActivityView {
	activities := make([]dto.ActivityView, len(categories))
	for i, category := range categories {
		activities[i] = dto.ActivityView{QuickLink: dto.QuickLink{Category: category}}
	}
	return activities
}

func assertDistinctColors(t *testing.T, actions []dto.RecommendedAction) {
	t.Helper()
	seen := map[string]bool{}
	for _, action := range actions {
		assert.False(t, seen[action.AccentColor], "duplicate accent color %s", action.AccentColor)
		seen[action.AccentColor] = true
		assert.NotEmpty(t, action.TargetRef)
	}
}

func TestStaticRankerIgnoresFeed(t *testing.T) {
	ranker := StaticRanker{}
	empty := ranker.Rank(nil)
	busy := ranker.Rank(feed(dto.QuickLinkAdd, dto.QuickLinkAdd, dto.QuickLinkDeploy))

	require.Len(t, empty, MaxRecommendedActions)
	assert.Equal(t, empty, busy)
	assert.Equal(t, "2단원 형성평가 생성", empty[0].Text)
	assert.Equal(t, "#6366f1", empty[0].AccentColor)
	assert.Equal(t, "#ec4899", empty[1].AccentColor)
	assert.Equal(t, "#10b981", empty[2].AccentColor)
	assertDistinctColors(t, empty)
}

func TestStaticRankerReturnsCopy(t *testing.T) {
	first := StaticRanker{}.Rank(nil)
	first[0].Text = "changed"

	assert.Equal(t, "2단원 형성평가 생성", StaticRanker{}.Rank(nil)[0].Text)
}

func TestFrequencyRankerOrdersByCount(t *testing.T) {
	actions := FrequencyRanker{}.Rank(feed(
		dto.QuickLinkAdd, dto.QuickLinkAdd, dto.QuickLinkAdd,
		dto.QuickLinkDeploy, dto.QuickLinkDeploy,
		dto.QuickLinkEdit, dto.QuickLinkEdit,
		dto.QuickLinkManage,
		dto.QuickLinkDetails, dto.QuickLinkDetails, dto.QuickLinkDetails, dto.QuickLinkDetails,
	))

	require.Len(t, actions, MaxRecommendedActions)
	assert.Equal(t, "/items/new", actions[0].TargetRef)
	// edit and deploy tie; edit wins by quick-link precedence.
	assert.Equal(t, "/items/edit", actions[1].TargetRef)
	assert.Equal(t, "/assessments/deploy", actions[2].TargetRef)
	assertDistinctColors(t, actions)
}

func TestFrequencyRankerPadsWithStaticActions(t *testing.T) {
	actions := FrequencyRanker{}.Rank(feed(dto.QuickLinkDeploy))

	require.Len(t, actions, MaxRecommendedActions)
	assert.Equal(t, "/assessments/deploy", actions[0].TargetRef)
	assert.Equal(t, "#6366f1", actions[1].AccentColor)
	assert.Equal(t, "#ec4899", actions[2].AccentColor)
	assertDistinctColors(t, actions)

	emptyFeed := FrequencyRanker{}.Rank(nil)
	assert.Equal(t, StaticRanker{}.Rank(nil), emptyFeed)
}

func TestFrequencyRankerSkipsDuplicateColorsWhenPadding(t *testing.T) {
	actions := FrequencyRanker{}.Rank(feed(dto.QuickLinkEdit))

	require.Len(t, actions, MaxRecommendedActions)
	assert.Equal(t, "/items/edit", actions[0].TargetRef)
	assert.Equal(t, "#6366f1", actions[1].AccentColor)
	assert.Equal(t, "#10b981", actions[2].AccentColor)
	assertDistinctColors(t, actions)
}

func TestNewRanker(t *testing.T) {
	assert.IsType(t, FrequencyRanker{}, NewRanker("Frequency"))
	assert.IsType(t, StaticRanker{}, NewRanker("static"))
	assert.IsType(t, StaticRanker{}, NewRanker(""))
}
