package models

// Stats - счетчики для дашборда диспетчера
type Stats struct {
	TotalIncidents  int `json:"total_incidents"`
	ActiveIncidents int `json:"active_incidents"` // статус вне {CLEARED, CANCELLED}
	OnScene         int `json:"on_scene"`
	Dispatched      int `json:"dispatched"` // DISPATCHED + EN_ROUTE
	TotalUnits      int `json:"total_units"`
	AvailableUnits  int `json:"available_units"`
}
