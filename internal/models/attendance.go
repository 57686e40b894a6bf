package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSample - замер числа посетителей на момент времени
type AttendanceSample struct {
	ID         int64     `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	Count      int       `json:"count"`
	RecordedAt time.Time `json:"recorded_at"`
}
