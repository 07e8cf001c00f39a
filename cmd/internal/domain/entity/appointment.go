package entity

// Appointment is a booking request made by a client. Date is the UTC
// midnight of the booked calendar day in epoch millis; TimeOfDay is
// millis since midnight. The two are stored separately so no synthetic
// reference date ever leaks out of the time-of-day component.
type Appointment struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string `gorm:"not null"`
	Date      int64  `gorm:"not null"`
	TimeOfDay int64  `gorm:"not null"`
	Treatment string `gorm:"not null"`
	Message   *string
	Status    string `gorm:"not null;default:pending"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}

// Appointment status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)
