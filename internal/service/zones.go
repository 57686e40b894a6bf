package service

import (
	"context"
	"time"

	"github.com/shenikar/event_safety_analytics/internal/models"
)

// StaticZoneSource отдаёт фиксированные иллюстративные снимки зон.
// Это заглушка: реальные зонные данные должны прийти от сенсорики,
// которая подключается заменой этой реализации.
type StaticZoneSource struct{}

func NewStaticZoneSource() *StaticZoneSource {
	return &StaticZoneSource{}
}

func (s *StaticZoneSource) Zones(_ context.Context, _ *models.Event, now time.Time) ([]models.DensityZone, error) {
	zones := []models.DensityZone{
		{ZoneID: "zone-a", Name: "Main Stage", Occupancy: 850, Capacity: 1000, PredictedPeak: now.Add(90 * time.Minute)},
		{ZoneID: "zone-b", Name: "Food Court", Occupancy: 420, Capacity: 600, PredictedPeak: now.Add(45 * time.Minute)},
		{ZoneID: "zone-c", Name: "Entrance Plaza", Occupancy: 280, Capacity: 500, PredictedPeak: now.Add(30 * time.Minute)},
		{ZoneID: "zone-d", Name: "West Concourse", Occupancy: 150, Capacity: 400, PredictedPeak: now.Add(2 * time.Hour)},
	}
	for i := range zones {
		zones[i].DensityPct = float64(zones[i].Occupancy) / float64(zones[i].Capacity) * 100
		zones[i].RiskLevel = densityRiskLevel(zones[i].DensityPct)
	}
	return zones, nil
}
