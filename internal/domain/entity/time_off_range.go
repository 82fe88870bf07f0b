package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffRange represents an inclusive range of calendar dates during which a
// staff member accepts no appointments. Ranges may overlap; each is checked
// independently, no merging is performed.
type TimeOffRange struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffMemberID uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_member_id"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason        string    `gorm:"type:text" json:"reason"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TimeOffRange) TableName() string {
	return "time_off_ranges"
}

// Contains reports whether the given calendar date falls inside the range.
func (t *TimeOffRange) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(t.StartDate) && !d.After(t.EndDate)
}
