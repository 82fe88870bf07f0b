package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySchedule represents the working window of a staff member on one weekday.
// Weekday is Sunday-based (0=Sunday .. 6=Saturday). Start/end are minute-of-day
// integers (0-1439); when Enabled, StartMinute < EndMinute.
// The seven rows of a staff member are replaced wholesale on every save.
type WeeklySchedule struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffMemberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_weekday" json:"staff_member_id"`
	Weekday       int       `gorm:"not null;uniqueIndex:idx_staff_weekday" json:"weekday"`
	Enabled       bool      `gorm:"not null;default:false" json:"enabled"`
	StartMinute   int       `gorm:"not null;default:0" json:"start_minute"`
	EndMinute     int       `gorm:"not null;default:0" json:"end_minute"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeeklySchedule) TableName() string {
	return "weekly_schedules"
}
