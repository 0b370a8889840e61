// Package apperrors содержит виды ошибок ядра диспетчеризации.
// Слои сервиса и репозитория заворачивают их через fmt.Errorf("...: %w", ...),
// HTTP-слой сопоставляет вид ошибки с кодом ответа.
package apperrors

import "errors"

var (
	// ErrValidation - некорректный ввод: пустое обязательное поле, неизвестное значение статуса
	ErrValidation = errors.New("validation error")
	// ErrNotFound - запись с указанным идентификатором отсутствует
	ErrNotFound = errors.New("not found")
	// ErrConflict - предусловие нарушено конкурентным изменением (юнит уже не AVAILABLE)
	ErrConflict = errors.New("conflict")
	// ErrInvalidState - операция недопустима из текущего статуса жизненного цикла
	ErrInvalidState = errors.New("invalid state")
	// ErrAuthorization - не пройдена проверка супервизора
	ErrAuthorization = errors.New("authorization failed")
	// ErrAuthentication - нет действительной сессии
	ErrAuthentication = errors.New("authentication failed")
)
