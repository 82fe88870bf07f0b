package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked visit. Start/end are minute-of-day integers on
// AppointmentDate; EndMinute may be absent on imported rows, in which case it is
// derived from the linked service's duration. Only pending and confirmed rows
// constrain availability.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EstablishmentID uuid.UUID         `gorm:"type:uuid;not null;index" json:"establishment_id"`
	StaffMemberID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"staff_member_id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null" json:"service_id"`
	CustomerName    string            `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string            `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone   string            `gorm:"type:varchar(32)" json:"customer_phone"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartMinute     int               `gorm:"not null" json:"start_minute"`
	EndMinute       *int              `json:"end_minute"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CancelReason    string            `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service Service     `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Staff   StaffMember `gorm:"foreignKey:StaffMemberID" json:"staff,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Blocking reports whether the appointment constrains availability.
func (a *Appointment) Blocking() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
