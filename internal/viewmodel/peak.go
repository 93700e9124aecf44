package viewmodel

import (
	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
)

// DetectPeaks flags every slot whose count equals the maximum. Ties are all peak,
// so equal counts mark every slot. Empty input yields an empty result.
func DetectPeaks(slots []models.TimeSlotCount) []dto.TimeSlot {
	result := make([]dto.TimeSlot, 0, len(slots))
	if len(slots) == 0 {
		return result
	}
	maxCount := slots[0].Count
	for _, slot := range slots[1:] {
		if slot.Count > maxCount {
			maxCount = slot.Count
		}
	}
	for _, slot := range slots {
		result = append(result, dto.TimeSlot{
			Icon:   slot.Icon,
			Label:  slot.Label,
			Count:  slot.Count,
			IsPeak: slot.Count == maxCount,
		})
	}
	return result
}

// PeakLabels returns the labels of peak slots in input order.
func PeakLabels(slots []dto.TimeSlot) []string {
	labels := []string{}
	for _, slot := range slots {
		if slot.IsPeak {
			labels = append(labels, slot.Label)
		}
	}
	return labels
}
