package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/config"
	"github.com/opslink/opslink_cad/internal/models"
	srv "github.com/opslink/opslink_cad/internal/service"
	"github.com/opslink/opslink_cad/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type adminServiceMocks struct {
	users    *mocks.MockUserRepository
	agencies *mocks.MockAgencyRepository
	dispatch *mocks.MockDispatchRepository
	sessions *mocks.MockSupervisorSessionStore
}

// newTestAdminService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAdminService(t *testing.T) (*srv.AdminServiceImpl, adminServiceMocks) {
	ctrl := gomock.NewController(t)
	m := adminServiceMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		agencies: mocks.NewMockAgencyRepository(ctrl),
		dispatch: mocks.NewMockDispatchRepository(ctrl),
		sessions: mocks.NewMockSupervisorSessionStore(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SupervisorSessionTTL: 8 * time.Hour,
	}

	service := srv.NewAdminService(m.users, m.agencies, m.dispatch, m.sessions, logger, cfg)
	svc := service.(*srv.AdminServiceImpl)
	svc.SetNowFunc(func() time.Time { return testNow })
	return svc, m
}

func supervisorSession(agencyID uuid.UUID) srv.Session {
	return srv.Session{
		UserID:    uuid.New(),
		AgencyID:  agencyID,
		Role:      models.RoleSupervisor,
		TokenID:   uuid.NewString(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestVerifySupervisor_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)

	hash, err := bcrypt.GenerateFromPassword([]byte("watch-commander"), bcrypt.MinCost)
	require.NoError(t, err)
	agency := &models.Agency{ID: agencyID, SupervisorPasswordHash: string(hash)}

	// Ожидания
	m.agencies.EXPECT().GetAgencyByID(ctx, agencyID).Return(agency, nil).Times(1)
	m.sessions.EXPECT().
		MarkVerified(ctx, session.TokenID, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err = service.VerifySupervisor(ctx, session, "watch-commander")

	// Проверки
	require.NoError(t, err)
}

func TestVerifySupervisor_WrongPassword(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)

	hash, err := bcrypt.GenerateFromPassword([]byte("watch-commander"), bcrypt.MinCost)
	require.NoError(t, err)
	agency := &models.Agency{ID: agencyID, SupervisorPasswordHash: string(hash)}

	// Ожидания: отметка не ставится
	m.agencies.EXPECT().GetAgencyByID(ctx, agencyID).Return(agency, nil).Times(1)
	m.sessions.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err = service.VerifySupervisor(ctx, session, "guess")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestVerifySupervisor_NonSupervisorRole(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	session := supervisorSession(uuid.New())
	session.Role = models.RoleUser

	// Ожидания: до агентства дело не доходит
	m.agencies.EXPECT().GetAgencyByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.VerifySupervisor(ctx, session, "watch-commander")

	// Проверки: отказ неотличим от неверного пароля
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestVerifySupervisor_TTLCappedByTokenExpiry(t *testing.T) {
	// Подготовка: токен истекает раньше, чем SupervisorSessionTTL
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	session.ExpiresAt = time.Now().Add(30 * time.Minute)

	hash, err := bcrypt.GenerateFromPassword([]byte("watch-commander"), bcrypt.MinCost)
	require.NoError(t, err)
	agency := &models.Agency{ID: agencyID, SupervisorPasswordHash: string(hash)}

	// Ожидания: отметка не переживает токен
	m.agencies.EXPECT().GetAgencyByID(ctx, agencyID).Return(agency, nil).Times(1)
	m.sessions.EXPECT().
		MarkVerified(ctx, session.TokenID, gomock.Cond(func(x any) bool {
			ttl := x.(time.Duration)
			return ttl > 0 && ttl <= 30*time.Minute
		})).
		Return(nil).
		Times(1)

	// Действие
	err = service.VerifySupervisor(ctx, session, "watch-commander")

	// Проверки
	require.NoError(t, err)
}

func TestSuspendUser_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	userID := uuid.New()
	user := &models.User{ID: userID, Username: "dispatcher7", Role: models.RoleUser, AgencyID: agencyID}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.users.EXPECT().GetUserByID(ctx, userID).Return(user, nil).Times(1)
	m.users.EXPECT().UpdateUser(ctx, user).Return(nil).Times(1)

	// Действие
	gotUser, err := service.SuspendUser(ctx, session, userID)

	// Проверки: запись сохраняется, меняется только флаг
	require.NoError(t, err)
	assert.True(t, gotUser.Suspended)
	assert.Equal(t, "dispatcher7", gotUser.Username)
}

func TestSuspendUser_UnverifiedSession(t *testing.T) {
	// Подготовка: роль супервизора есть, но пароль в этой сессии не вводился
	service, m := newTestAdminService(t)
	ctx := context.Background()
	session := supervisorSession(uuid.New())

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(false, nil).Times(1)
	m.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.SuspendUser(ctx, session, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestSuspendUser_CrossAgencyLooksLikeNotFound(t *testing.T) {
	// Подготовка: пользователь принадлежит другому агентству
	service, m := newTestAdminService(t)
	ctx := context.Background()
	session := supervisorSession(uuid.New())
	userID := uuid.New()
	foreignUser := &models.User{ID: userID, AgencyID: uuid.New()}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.users.EXPECT().GetUserByID(ctx, userID).Return(foreignUser, nil).Times(1)
	m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.SuspendUser(ctx, session, userID)

	// Проверки: чужая запись неотличима от несуществующей
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetUserRole_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	userID := uuid.New()
	user := &models.User{ID: userID, Role: models.RoleUser, AgencyID: agencyID}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.users.EXPECT().GetUserByID(ctx, userID).Return(user, nil).Times(1)
	m.users.EXPECT().UpdateUser(ctx, user).Return(nil).Times(1)

	// Действие
	gotUser, err := service.SetUserRole(ctx, session, userID, models.RoleSupervisor)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.RoleSupervisor, gotUser.Role)
}

func TestTerminateUser_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	userID := uuid.New()
	user := &models.User{ID: userID, AgencyID: agencyID}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.users.EXPECT().GetUserByID(ctx, userID).Return(user, nil).Times(1)
	m.users.EXPECT().DeleteUser(ctx, userID).Return(nil).Times(1)

	// Действие
	err := service.TerminateUser(ctx, session, userID)

	// Проверки
	require.NoError(t, err)
}

func TestCreateUnit_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	unit := &models.Unit{Callsign: "E1", Type: "ENGINE"}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.dispatch.EXPECT().CreateUnit(ctx, unit).Return(nil).Times(1)

	// Действие
	err := service.CreateUnit(ctx, session, unit)

	// Проверки: юнит рождается свободным и в агентстве вызывающего
	require.NoError(t, err)
	assert.Equal(t, models.UnitAvailable, unit.Status)
	assert.Nil(t, unit.CurrentIncidentID)
	assert.Equal(t, agencyID, unit.AgencyID)
}

func TestRemoveUnit_ReleasesActiveAssignment(t *testing.T) {
	// Подготовка: удаляемый юнит назначен на инцидент
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	incidentID := uuid.New()
	unitID := uuid.New()
	unit := &models.Unit{
		ID:                unitID,
		Callsign:          "E1",
		Status:            models.UnitOnScene,
		CurrentIncidentID: &incidentID,
		AgencyID:          agencyID,
	}
	incident := &models.Incident{
		ID:            incidentID,
		Status:        models.IncidentOnScene,
		UnitsAssigned: []uuid.UUID{unitID},
	}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.dispatch.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	m.dispatch.EXPECT().GetIncidentByID(ctx, incidentID).Return(incident, nil).Times(1)
	m.dispatch.EXPECT().ApplyRelease(ctx, incident, []*models.Unit{unit}).Return(nil).Times(1)
	m.dispatch.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	m.dispatch.EXPECT().DeleteUnit(ctx, unitID).Return(nil).Times(1)

	// Действие
	err := service.RemoveUnit(ctx, session, unitID)

	// Проверки: история инцидента не теряет следа удаленного юнита
	require.NoError(t, err)
	assert.Empty(t, incident.UnitsAssigned)
	require.Len(t, incident.Timeline, 1)
	assert.Equal(t, "Unit E1 released (unit removed)", incident.Timeline[0].Message)
}

func TestRemoveUnit_IdleUnit(t *testing.T) {
	// Подготовка: свободный юнит удаляется без снятия
	service, m := newTestAdminService(t)
	ctx := context.Background()
	agencyID := uuid.New()
	session := supervisorSession(agencyID)
	unitID := uuid.New()
	unit := &models.Unit{ID: unitID, Callsign: "E1", Status: models.UnitAvailable, AgencyID: agencyID}

	// Ожидания
	m.sessions.EXPECT().IsVerified(ctx, session.TokenID).Return(true, nil).Times(1)
	m.dispatch.EXPECT().GetUnitByID(ctx, unitID).Return(unit, nil).Times(1)
	m.dispatch.EXPECT().ApplyRelease(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.dispatch.EXPECT().DeleteUnit(ctx, unitID).Return(nil).Times(1)

	// Действие
	err := service.RemoveUnit(ctx, session, unitID)

	// Проверки
	require.NoError(t, err)
}

func TestListUsers_RequiresSupervisorRole(t *testing.T) {
	// Подготовка
	service, m := newTestAdminService(t)
	ctx := context.Background()
	session := supervisorSession(uuid.New())
	session.Role = models.RoleUser

	// Ожидания: проверка отметки не запрашивается для обычной роли
	m.sessions.EXPECT().IsVerified(gomock.Any(), gomock.Any()).Times(0)
	m.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.ListUsers(ctx, session)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}
