package models

import (
	"time"

	"github.com/google/uuid"
)

// Event представляет массовое мероприятие, для которого считается аналитика
type Event struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	EventType         string    `json:"event_type"`
	VenueName         string    `json:"venue_name"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	MaxCapacity       int       `json:"max_capacity"`
	CurrentAttendance int       `json:"current_attendance"`
	StaffCount        int       `json:"staff_count"`
	Status            string    `json:"status"`
	StartsAt          time.Time `json:"starts_at"`
	EndsAt            time.Time `json:"ends_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DensityPercent возвращает текущую заполненность площадки в процентах
func (e *Event) DensityPercent() float64 {
	if e.MaxCapacity <= 0 {
		return 0
	}
	return float64(e.CurrentAttendance) / float64(e.MaxCapacity) * 100
}
