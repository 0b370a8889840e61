package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/models"
	srv "github.com/opslink/opslink_cad/internal/service"
	"github.com/opslink/opslink_cad/internal/service/mocks"
	webhook_mocks "github.com/opslink/opslink_cad/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// newTestDispatchService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDispatchService(t *testing.T) (*srv.DispatchServiceImpl, *mocks.MockDispatchRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDispatchRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := srv.NewDispatchService(repoMock, logger, publisherMock)
	svc := service.(*srv.DispatchServiceImpl)
	svc.SetNowFunc(func() time.Time { return testNow }) // Фиксируем время для проверок журнала
	return svc, repoMock, publisherMock
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incident := &models.Incident{
		Type:     "STRUCTURE_FIRE",
		Priority: 1,
		Address:  "221B Baker St",
		AgencyID: uuid.New(),
	}

	// Ожидания
	repoMock.EXPECT().
		CreateIncident(ctx, incident).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateIncident(ctx, incident, "Caller reports smoke")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentOpen, incident.Status)
	assert.Empty(t, incident.UnitsAssigned)
	require.Len(t, incident.Timeline, 1)
	assert.Equal(t, models.IncidentOpen, incident.Timeline[0].Status)
	assert.Equal(t, "Incident created", incident.Timeline[0].Message)
	assert.Equal(t, testNow, incident.Timeline[0].TS)
	require.Len(t, incident.Notes, 1)
	assert.Equal(t, "Caller reports smoke", incident.Notes[0].Text)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания: репозиторий и издатель не должны вызываться
	repoMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	testCases := []struct {
		name     string
		incident *models.Incident
	}{
		{"пустой тип", &models.Incident{Priority: 1, Address: "somewhere"}},
		{"пустой адрес", &models.Incident{Type: "MEDICAL", Priority: 1}},
		{"приоритет вне диапазона", &models.Incident{Type: "MEDICAL", Priority: 4, Address: "somewhere"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Действие
			err := service.CreateIncident(ctx, tc.incident, "")

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestAssignUnit_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	incident := &models.Incident{
		ID:       incidentID,
		Number:   "INC-000042",
		Status:   models.IncidentOpen,
		Timeline: []models.TimelineEntry{{TS: testNow, Status: models.IncidentOpen, Message: "Incident created"}},
	}
	unit := &models.Unit{
		ID:       unitID,
		Callsign: "E1",
		Status:   models.UnitAvailable,
	}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().ApplyAssignment(ctx, incident, unit).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, gotUnit, err := service.AssignUnit(ctx, incidentID, unitID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentDispatched, gotIncident.Status)
	assert.Equal(t, []uuid.UUID{unitID}, gotIncident.UnitsAssigned)
	require.Len(t, gotIncident.Timeline, 2)
	assert.Equal(t, "Unit E1 assigned", gotIncident.Timeline[1].Message)
	assert.Equal(t, models.IncidentDispatched, gotIncident.Timeline[1].Status)
	assert.Equal(t, models.UnitDispatched, gotUnit.Status)
	require.NotNil(t, gotUnit.CurrentIncidentID)
	assert.Equal(t, incidentID, *gotUnit.CurrentIncidentID)
}

func TestAssignUnit_KeepsIncidentStatusWhenAlreadyDispatched(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	firstUnit := uuid.New()
	secondUnit := uuid.New()
	incident := &models.Incident{
		ID:            incidentID,
		Status:        models.IncidentOnScene,
		UnitsAssigned: []uuid.UUID{firstUnit},
	}
	unit := &models.Unit{ID: secondUnit, Callsign: "M7", Status: models.UnitAvailable}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, secondUnit).Return(unit, nil).Times(1)
	repoMock.EXPECT().ApplyAssignment(ctx, incident, unit).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, _, err := service.AssignUnit(ctx, incidentID, secondUnit)

	// Проверки: второй юнит не откатывает инцидент назад
	require.NoError(t, err)
	assert.Equal(t, models.IncidentOnScene, gotIncident.Status)
	assert.Equal(t, []uuid.UUID{firstUnit, secondUnit}, gotIncident.UnitsAssigned)
}

func TestAssignUnit_UnitNotAvailable(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	otherIncident := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentOpen}
	unit := &models.Unit{
		ID:                unitID,
		Callsign:          "E1",
		Status:            models.UnitEnRoute,
		CurrentIncidentID: &otherIncident,
	}

	// Ожидания: запись не должна применяться
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().ApplyAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := service.AssignUnit(ctx, incidentID, unitID)

	// Проверки: отказ и нетронутое состояние обеих записей
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, incident.UnitsAssigned)
	assert.Equal(t, models.UnitEnRoute, unit.Status)
	assert.Equal(t, otherIncident, *unit.CurrentIncidentID)
}

func TestAssignUnit_TerminalIncident(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Number: "INC-000007", Status: models.IncidentCleared}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := service.AssignUnit(ctx, incidentID, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestAssignUnit_StorageConflict(t *testing.T) {
	// Подготовка: гонка двух диспетчеров, хранилище отклоняет вторую запись
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentOpen}
	unit := &models.Unit{ID: unitID, Callsign: "E1", Status: models.UnitAvailable}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().
		ApplyAssignment(ctx, incident, unit).
		Return(fmt.Errorf("repository: unit is no longer available: %w", apperrors.ErrConflict)).
		Times(1)

	// Действие
	_, _, err := service.AssignUnit(ctx, incidentID, unitID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUnassignUnit_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	incident := &models.Incident{
		ID:            incidentID,
		Status:        models.IncidentOnScene,
		UnitsAssigned: []uuid.UUID{unitID},
	}
	unit := &models.Unit{
		ID:                unitID,
		Callsign:          "E1",
		Status:            models.UnitOnScene,
		CurrentIncidentID: &incidentID,
	}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().ApplyRelease(ctx, incident, []*models.Unit{unit}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, err := service.UnassignUnit(ctx, incidentID, unitID)

	// Проверки: статус инцидента не меняется, юнит свободен
	require.NoError(t, err)
	assert.Equal(t, models.IncidentOnScene, gotIncident.Status)
	assert.Empty(t, gotIncident.UnitsAssigned)
	require.Len(t, gotIncident.Timeline, 1)
	assert.Equal(t, "Unit E1 released", gotIncident.Timeline[0].Message)
	assert.Equal(t, models.UnitAvailable, unit.Status)
	assert.Nil(t, unit.CurrentIncidentID)
}

func TestUnassignUnit_Idempotent(t *testing.T) {
	// Подготовка: юнит уже не назначен на инцидент
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentDispatched}
	unit := &models.Unit{ID: unitID, Callsign: "E1", Status: models.UnitAvailable}

	// Ожидания: запись не применяется повторно
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().ApplyRelease(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	gotIncident, err := service.UnassignUnit(ctx, incidentID, unitID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incident, gotIncident)
	assert.Empty(t, gotIncident.Timeline)
}

func TestSetUnitStatus_ForwardStep(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	unit := &models.Unit{
		ID:                unitID,
		Callsign:          "E1",
		Status:            models.UnitDispatched,
		CurrentIncidentID: &incidentID,
	}

	// Ожидания: привязка сохраняется, обновляется только юнит
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().UpdateUnit(ctx, unit).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotUnit, err := service.SetUnitStatus(ctx, unitID, models.UnitEnRoute)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.UnitEnRoute, gotUnit.Status)
	assert.Equal(t, incidentID, *gotUnit.CurrentIncidentID)
}

func TestSetUnitStatus_ImplicitRelease(t *testing.T) {
	// Подготовка: перевод в AVAILABLE при активной привязке
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	unitID := uuid.New()
	incident := &models.Incident{
		ID:            incidentID,
		Status:        models.IncidentOnScene,
		UnitsAssigned: []uuid.UUID{unitID},
	}
	unit := &models.Unit{
		ID:                unitID,
		Callsign:          "E1",
		Status:            models.UnitOnScene,
		CurrentIncidentID: &incidentID,
	}

	// Ожидания
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().ApplyRelease(ctx, incident, []*models.Unit{unit}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotUnit, err := service.SetUnitStatus(ctx, unitID, models.UnitAvailable)

	// Проверки: неявное снятие отражено в журнале инцидента
	require.NoError(t, err)
	assert.Equal(t, models.UnitAvailable, gotUnit.Status)
	assert.Nil(t, gotUnit.CurrentIncidentID)
	assert.Empty(t, incident.UnitsAssigned)
	require.Len(t, incident.Timeline, 1)
	assert.Equal(t, "Unit E1 released (status set to AVAILABLE)", incident.Timeline[0].Message)
}

func TestSetUnitStatus_InvalidTransition(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unitID := uuid.New()
	unit := &models.Unit{ID: unitID, Callsign: "E1", Status: models.UnitOutOfService}

	// Ожидания
	repoMock.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().UpdateUnit(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.SetUnitStatus(ctx, unitID, models.UnitDispatched)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestSetIncidentStatus_TerminalReleasesUnitsInOrder(t *testing.T) {
	// Подготовка: отмена инцидента с двумя назначенными юнитами
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	incident := &models.Incident{
		ID:            incidentID,
		Number:        "INC-000042",
		Status:        models.IncidentEnRoute,
		UnitsAssigned: []uuid.UUID{firstID, secondID},
	}
	first := &models.Unit{ID: firstID, Callsign: "E1", Status: models.UnitEnRoute, CurrentIncidentID: &incidentID}
	second := &models.Unit{ID: secondID, Callsign: "M7", Status: models.UnitDispatched, CurrentIncidentID: &incidentID}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, firstID).Return(first, nil).Times(1)
	repoMock.EXPECT().GetUnitByID(ctx, secondID).Return(second, nil).Times(1)
	repoMock.EXPECT().ApplyRelease(ctx, incident, []*models.Unit{first, second}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, err := service.SetIncidentStatus(ctx, incidentID, models.IncidentCancelled, "False alarm")

	// Проверки: сначала запись о смене статуса, затем снятия в порядке назначения
	require.NoError(t, err)
	assert.Equal(t, models.IncidentCancelled, gotIncident.Status)
	assert.Empty(t, gotIncident.UnitsAssigned)
	require.Len(t, gotIncident.Timeline, 3)
	assert.Equal(t, "False alarm", gotIncident.Timeline[0].Message)
	assert.Equal(t, "Unit E1 released", gotIncident.Timeline[1].Message)
	assert.Equal(t, "Unit M7 released", gotIncident.Timeline[2].Message)
	for _, entry := range gotIncident.Timeline {
		assert.Equal(t, models.IncidentCancelled, entry.Status)
	}
	assert.Equal(t, models.UnitAvailable, first.Status)
	assert.Equal(t, models.UnitAvailable, second.Status)
	assert.Nil(t, first.CurrentIncidentID)
	assert.Nil(t, second.CurrentIncidentID)
}

func TestSetIncidentStatus_ForwardStep(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentDispatched}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().UpdateIncident(ctx, incident).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, err := service.SetIncidentStatus(ctx, incidentID, models.IncidentEnRoute, "")

	// Проверки: пустое сообщение заменяется служебным
	require.NoError(t, err)
	assert.Equal(t, models.IncidentEnRoute, gotIncident.Status)
	require.Len(t, gotIncident.Timeline, 1)
	assert.Equal(t, "Status changed to EN_ROUTE", gotIncident.Timeline[0].Message)
}

func TestSetIncidentStatus_InvalidTransition(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Number: "INC-000042", Status: models.IncidentOpen}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().UpdateIncident(gomock.Any(), gomock.Any()).Times(0)

	// Действие: прыжок через шаг прямого пути
	_, err := service.SetIncidentStatus(ctx, incidentID, models.IncidentEnRoute, "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, models.IncidentOpen, incident.Status)
}

func TestCloseIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentOnScene}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().ApplyRelease(ctx, incident, []*models.Unit{}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	gotIncident, err := service.CloseIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentCleared, gotIncident.Status)
	require.Len(t, gotIncident.Timeline, 1)
	assert.Equal(t, "Incident cleared", gotIncident.Timeline[0].Message)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Number: "INC-000001"}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Number: "INC-000001"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetIncidentByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		GetIncidentByID(ctx, incidentID).
		Return(nil, fmt.Errorf("repository: incident not found: %w", apperrors.ErrNotFound)).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, incident)
}

func TestAddNote_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.IncidentOnScene}

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	repoMock.EXPECT().UpdateIncident(ctx, incident).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	gotIncident, err := service.AddNote(ctx, incidentID, "Second alarm requested")

	// Проверки: заметка не попадает в журнал статусов
	require.NoError(t, err)
	require.Len(t, gotIncident.Notes, 1)
	assert.Equal(t, "Second alarm requested", gotIncident.Notes[0].Text)
	assert.Equal(t, testNow, gotIncident.Notes[0].TS)
	assert.Empty(t, gotIncident.Timeline)
}

func TestAddNote_EmptyText(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetIncidentByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.AddNote(ctx, uuid.New(), "   ")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateIncident_PublishFailureDoesNotFailMutation(t *testing.T) {
	// Подготовка: очередь событий недоступна
	service, repoMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incident := &models.Incident{Type: "MEDICAL", Priority: 2, Address: "somewhere"}

	// Ожидания
	repoMock.EXPECT().CreateIncident(ctx, incident).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis: connection refused")).
		Times(1)

	// Действие
	err := service.CreateIncident(ctx, incident, "")

	// Проверки: мутация принята несмотря на сбой публикации
	require.NoError(t, err)
}
