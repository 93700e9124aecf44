package repository

import "github.com/noah-isme/aidt-dashboard-api/internal/models"

// timeSlotBuckets are the four fixed six-hour buckets, indexed by hour / 6.
var timeSlotBuckets = [4]models.TimeSlotCount{
	{Icon: "🌙", Label: "새벽 (00-06)"},
	{Icon: "🌅", Label: "오전 (06-12)"},
	{Icon: "☀️", Label: "오후 (12-18)"},
	{Icon: "🌆", Label: "저녁 (18-24)"},
}

func emptyTimeSlots() []models.TimeSlotCount {
	slots := make([]models.TimeSlotCount, len(timeSlotBuckets))
	copy(slots, timeSlotBuckets[:])
	return slots
}
