package v1

import "github.com/opslink/opslink_cad/internal/models"

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// Журнал отдается в хронологическом порядке, как хранится.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	timeline := make([]TimelineEntryResponse, len(model.Timeline))
	for i, entry := range model.Timeline {
		timeline[i] = TimelineEntryResponse{
			TS:      entry.TS,
			Status:  string(entry.Status),
			Message: entry.Message,
		}
	}

	notes := make([]NoteResponse, len(model.Notes))
	for i, note := range model.Notes {
		notes[i] = NoteResponse{TS: note.TS, Text: note.Text}
	}

	return &IncidentResponse{
		ID:            model.ID,
		Number:        model.Number,
		Type:          model.Type,
		Priority:      model.Priority,
		Status:        string(model.Status),
		Address:       model.Address,
		UnitsAssigned: model.UnitsAssigned,
		Timeline:      timeline,
		Notes:         notes,
		AgencyID:      model.AgencyID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUnitResponse преобразует доменную модель юнита в DTO для ответа
func ModelToUnitResponse(model *models.Unit) *UnitResponse {
	return &UnitResponse{
		ID:                model.ID,
		Callsign:          model.Callsign,
		Type:              model.Type,
		Status:            string(model.Status),
		CurrentIncidentID: model.CurrentIncidentID,
		AgencyID:          model.AgencyID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToUnitResponses преобразует слайс моделей юнитов в слайс DTO
func ModelsToUnitResponses(units []*models.Unit) []*UnitResponse {
	responses := make([]*UnitResponse, len(units))
	for i, model := range units {
		responses[i] = ModelToUnitResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Username:  model.Username,
		Email:     model.Email,
		Role:      string(model.Role),
		Suspended: model.Suspended,
		AgencyID:  model.AgencyID,
	}
}

// ModelsToUserResponses преобразует слайс моделей пользователей в слайс DTO
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, model := range users {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// ModelToAgencyResponse преобразует доменную модель агентства в DTO для ответа
func ModelToAgencyResponse(model *models.Agency) *AgencyResponse {
	return &AgencyResponse{
		ID:   model.ID,
		Name: model.Name,
	}
}

// ModelToStatsResponse преобразует счетчики дашборда в DTO для ответа
func ModelToStatsResponse(model *models.Stats) *StatsResponse {
	return &StatsResponse{
		TotalIncidents:  model.TotalIncidents,
		ActiveIncidents: model.ActiveIncidents,
		OnScene:         model.OnScene,
		Dispatched:      model.Dispatched,
		TotalUnits:      model.TotalUnits,
		AvailableUnits:  model.AvailableUnits,
	}
}
