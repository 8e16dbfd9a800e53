package cargo

import (
	"time"
)

// TrackingUpdate is one immutable event in a booking's status history.
// Rows are only ever appended; display order is newest first.
type TrackingUpdate struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"booking"`

	Status   Status `gorm:"type:varchar(50);not null" json:"status"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the TrackingUpdate model.
func (TrackingUpdate) TableName() string {
	return "tracking_updates"
}
