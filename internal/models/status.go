package models

import "fmt"

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "OPEN"
	IncidentDispatched IncidentStatus = "DISPATCHED"
	IncidentEnRoute    IncidentStatus = "EN_ROUTE"
	IncidentOnScene    IncidentStatus = "ON_SCENE"
	IncidentCleared    IncidentStatus = "CLEARED"
	IncidentCancelled  IncidentStatus = "CANCELLED"
)

// порядок прямого пути OPEN -> DISPATCHED -> EN_ROUTE -> ON_SCENE -> CLEARED
var incidentProgression = map[IncidentStatus]int{
	IncidentOpen:       0,
	IncidentDispatched: 1,
	IncidentEnRoute:    2,
	IncidentOnScene:    3,
	IncidentCleared:    4,
}

// ParseIncidentStatus проверяет, что строка входит в закрытый словарь статусов.
// Сравнение строгое, без нормализации регистра.
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	switch IncidentStatus(s) {
	case IncidentOpen, IncidentDispatched, IncidentEnRoute, IncidentOnScene, IncidentCleared, IncidentCancelled:
		return IncidentStatus(s), nil
	}
	return "", fmt.Errorf("unknown incident status %q", s)
}

// IsTerminal сообщает, является ли статус терминальным (дальнейшие переходы запрещены)
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentCleared || s == IncidentCancelled
}

// CanTransitionTo проверяет допустимость перехода инцидента в статус next.
// Разрешен только следующий шаг прямого пути; CANCELLED достижим из любого
// нетерминального статуса.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == IncidentCancelled {
		return true
	}
	cur, ok := incidentProgression[s]
	if !ok {
		return false
	}
	target, ok := incidentProgression[next]
	if !ok {
		return false
	}
	return target == cur+1
}

// UnitStatus - статус жизненного цикла юнита
type UnitStatus string

const (
	UnitAvailable    UnitStatus = "AVAILABLE"
	UnitDispatched   UnitStatus = "DISPATCHED"
	UnitEnRoute      UnitStatus = "EN_ROUTE"
	UnitOnScene      UnitStatus = "ON_SCENE"
	UnitOutOfService UnitStatus = "OUT_OF_SERVICE"
)

var unitProgression = map[UnitStatus]int{
	UnitAvailable:  0,
	UnitDispatched: 1,
	UnitEnRoute:    2,
	UnitOnScene:    3,
}

// ParseUnitStatus проверяет, что строка входит в закрытый словарь статусов юнита
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch UnitStatus(s) {
	case UnitAvailable, UnitDispatched, UnitEnRoute, UnitOnScene, UnitOutOfService:
		return UnitStatus(s), nil
	}
	return "", fmt.Errorf("unknown unit status %q", s)
}

// Committed сообщает, означает ли статус активную привязку юнита к инциденту
func (s UnitStatus) Committed() bool {
	return s != UnitAvailable && s != UnitOutOfService
}

// CanTransitionTo проверяет допустимость перехода юнита в статус next.
// Прямой путь AVAILABLE -> DISPATCHED -> EN_ROUTE -> ON_SCENE; AVAILABLE и
// OUT_OF_SERVICE достижимы из любого статуса (ручной перевод диспетчером).
func (s UnitStatus) CanTransitionTo(next UnitStatus) bool {
	if next == UnitAvailable || next == UnitOutOfService {
		return true
	}
	cur, ok := unitProgression[s]
	if !ok {
		// из OUT_OF_SERVICE вперед по цепочке нельзя, только через AVAILABLE
		return false
	}
	target, ok := unitProgression[next]
	if !ok {
		return false
	}
	return target == cur+1
}
