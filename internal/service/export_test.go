package service

import "time"

// Экспорт внутренних деталей для внешнего тестового пакета service_test.
type (
	AdminServiceImpl    = adminService
	DispatchServiceImpl = dispatchService
)

// SetNowFunc фиксирует источник времени в тестах.
func (s *adminService) SetNowFunc(now func() time.Time) { s.now = now }

// SetNowFunc фиксирует источник времени в тестах.
func (s *dispatchService) SetNowFunc(now func() time.Time) { s.now = now }
