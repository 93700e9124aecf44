package viewmodel

import (
	"strings"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
)

type quickLinkRule struct {
	keyword string
	link    dto.QuickLink
}

// quickLinkRules is ordered; descriptions often hold several keywords ("생성 후 수정").
var quickLinkRules = []quickLinkRule{
	{keyword: "생성", link: dto.QuickLink{Category: dto.QuickLinkManage, DisplayText: "평가 관리", Icon: "→"}},
	{keyword: "수정", link: dto.QuickLink{Category: dto.QuickLinkEdit, DisplayText: "문항 수정", Icon: "✏️"}},
	{keyword: "조회", link: dto.QuickLink{Category: dto.QuickLinkResults, DisplayText: "결과 보기", Icon: "📊"}},
	{keyword: "배포", link: dto.QuickLink{Category: dto.QuickLinkDeploy, DisplayText: "평가 배포", Icon: "📤"}},
	{keyword: "추가", link: dto.QuickLink{Category: dto.QuickLinkAdd, DisplayText: "문항 추가", Icon: "➕"}},
}

var fallbackQuickLink = dto.QuickLink{Category: dto.QuickLinkDetails, DisplayText: "자세히 보기", Icon: "→"}

// ClassifyQuickLink returns the quick-link of the first rule whose keyword occurs in
// description. Matching runs on the raw text, markup included.
func ClassifyQuickLink(description string) dto.QuickLink {
	for _, rule := range quickLinkRules {
		if strings.Contains(description, rule.keyword) {
			return rule.link
		}
	}
	return fallbackQuickLink
}

// categoryRank reports a category's position in the precedence list.
func categoryRank(category dto.QuickLinkCategory) int {
	for i, rule := range quickLinkRules {
		if rule.link.Category == category {
			return i
		}
	}
	return len(quickLinkRules)
}
