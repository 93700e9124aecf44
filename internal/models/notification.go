package models

import "time"

// NotificationPreference stores the reminder time a teacher picked in the dashboard.
type NotificationPreference struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacherId"`
	NotifyAt  string    `db:"notify_at" json:"notifyAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
