package v1

import "github.com/shenikar/event_safety_analytics/internal/models"

// DTOToEventModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToEventModel(dto any) *models.Event {
	switch v := dto.(type) {
	case CreateEventRequest:
		return &models.Event{
			Name:        v.Name,
			EventType:   v.EventType,
			VenueName:   v.VenueName,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			MaxCapacity: v.MaxCapacity,
			StaffCount:  v.StaffCount,
			StartsAt:    v.StartsAt,
			EndsAt:      v.EndsAt,
		}
	case UpdateEventRequest:
		return &models.Event{
			Name:        v.Name,
			EventType:   v.EventType,
			VenueName:   v.VenueName,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			MaxCapacity: v.MaxCapacity,
			StaffCount:  v.StaffCount,
			Status:      v.Status,
			StartsAt:    v.StartsAt,
			EndsAt:      v.EndsAt,
		}
	}
	return nil
}

// ModelToEventResponse преобразует доменную модель в DTO для ответа
func ModelToEventResponse(model *models.Event) *EventResponse {
	return &EventResponse{
		ID:                model.ID,
		Name:              model.Name,
		EventType:         model.EventType,
		VenueName:         model.VenueName,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		MaxCapacity:       model.MaxCapacity,
		CurrentAttendance: model.CurrentAttendance,
		StaffCount:        model.StaffCount,
		Status:            model.Status,
		StartsAt:          model.StartsAt,
		EndsAt:            model.EndsAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToEventResponses преобразует слайс моделей в слайс DTO
func ModelsToEventResponses(models []*models.Event) []*EventResponse {
	responses := make([]*EventResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEventResponse(model)
	}
	return responses
}

// DTOToIncidentModel преобразует DTO регистрации инцидента в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		IncidentType: dto.IncidentType,
		Description:  dto.Description,
		Location:     dto.Location,
		Severity:     dto.Severity,
		Priority:     dto.Priority,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		EventID:      model.EventID,
		IncidentType: model.IncidentType,
		Description:  model.Description,
		Location:     model.Location,
		Severity:     model.Severity,
		Priority:     model.Priority,
		Status:       model.Status,
		ReportedAt:   model.ReportedAt,
		ResolvedAt:   model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
