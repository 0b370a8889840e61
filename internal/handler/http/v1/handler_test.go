package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/config"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/opslink/opslink_cad/internal/service"
	"github.com/opslink/opslink_cad/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	dispatch *mocks.MockDispatchService
	auth     *mocks.MockAuthService
	admin    *mocks.MockAdminService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		dispatch: mocks.NewMockDispatchService(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		admin:    mocks.NewMockAdminService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	handler := NewHandler(m.dispatch, m.auth, m.admin, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// authHeaders настраивает мок разбора токена и возвращает заголовки запроса
func authHeaders(m handlerMocks, session service.Session) map[string]string {
	m.auth.EXPECT().
		ParseToken("test-token").
		Return(&session, nil).
		Times(1)
	return map[string]string{"Authorization": "Bearer test-token"}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testSession() service.Session {
	return service.Session{
		UserID:   uuid.New(),
		AgencyID: uuid.New(),
		Role:     models.RoleUser,
		TokenID:  uuid.NewString(),
	}
}

func marshalBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestCreateIncident_Handler_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	reqBody := CreateIncidentRequest{
		Type:     "STRUCTURE_FIRE",
		Priority: 1,
		Address:  "221B Baker St",
		Note:     "Caller reports smoke",
	}

	m.dispatch.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), "Caller reports smoke").
		DoAndReturn(func(_ context.Context, incident *models.Incident, _ string) error {
			incident.ID = uuid.New()
			incident.Number = "INC-000001"
			incident.Status = models.IncidentOpen
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody), authHeaders(m, session))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INC-000001", resp.Number)
	assert.Equal(t, "OPEN", resp.Status)
}

func TestCreateIncident_Handler_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	reqBody := CreateIncidentRequest{Type: "STRUCTURE_FIRE", Priority: 9, Address: "221B Baker St"}

	m.dispatch.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody), authHeaders(m, session))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIncident_Handler_NoToken(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{Type: "STRUCTURE_FIRE", Priority: 1, Address: "221B Baker St"}

	m.dispatch.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetIncident_Handler_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	incidentID := uuid.New()

	m.dispatch.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("service: could not get incident: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+incidentID.String(), nil, authHeaders(m, session))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_Handler_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()

	m.dispatch.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/not-a-uuid", nil, authHeaders(m, session))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignUnit_Handler_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	incidentID := uuid.New()
	unitID := uuid.New()
	reqBody := AssignUnitRequest{UnitID: unitID}

	m.dispatch.EXPECT().
		AssignUnit(gomock.Any(), incidentID, unitID).
		Return(nil, nil, fmt.Errorf("service: unit E1 is EN_ROUTE, not AVAILABLE: %w", apperrors.ErrConflict)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/assign", marshalBody(t, reqBody), authHeaders(m, session))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSetIncidentStatus_Handler_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	incidentID := uuid.New()
	reqBody := UpdateIncidentStatusRequest{Status: "ON_SCENE"}

	m.dispatch.EXPECT().
		SetIncidentStatus(gomock.Any(), incidentID, models.IncidentOnScene, "").
		Return(nil, fmt.Errorf("service: incident INC-000001 cannot go OPEN -> ON_SCENE: %w", apperrors.ErrInvalidState)).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/"+incidentID.String()+"/status", marshalBody(t, reqBody), authHeaders(m, session))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSetIncidentStatus_Handler_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	incidentID := uuid.New()

	m.dispatch.EXPECT().SetIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewReader([]byte(`{"status":"RESOLVED"}`))
	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/"+incidentID.String()+"/status", body, authHeaders(m, session))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetUnitStatus_Handler_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	unitID := uuid.New()
	reqBody := UpdateUnitStatusRequest{Status: "EN_ROUTE"}
	unit := &models.Unit{ID: unitID, Callsign: "E1", Status: models.UnitEnRoute}

	m.dispatch.EXPECT().
		SetUnitStatus(gomock.Any(), unitID, models.UnitEnRoute).
		Return(unit, nil).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/units/"+unitID.String()+"/status", marshalBody(t, reqBody), authHeaders(m, session))

	require.Equal(t, http.StatusOK, w.Code)
	var resp UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EN_ROUTE", resp.Status)
}

func TestVerifySupervisor_Handler_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	reqBody := VerifySupervisorRequest{Password: "guess"}

	m.admin.EXPECT().
		VerifySupervisor(gomock.Any(), session, "guess").
		Return(fmt.Errorf("service: supervisor verification failed: %w", apperrors.ErrAuthorization)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/supervisor/verify", marshalBody(t, reqBody), authHeaders(m, session))

	assert.Equal(t, http.StatusForbidden, w.Code)
	// Единый ответ: тело не раскрывает, что именно не совпало
	assert.Contains(t, w.Body.String(), "supervisor authorization required")
}

func TestSuspendUser_Handler_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	session.Role = models.RoleSupervisor
	userID := uuid.New()
	user := &models.User{ID: userID, Username: "dispatcher7", Role: models.RoleUser, Suspended: true, AgencyID: session.AgencyID}

	m.admin.EXPECT().
		SuspendUser(gomock.Any(), session, userID).
		Return(user, nil).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/users/"+userID.String()+"/suspend", nil, authHeaders(m, session))

	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Suspended)
}

func TestTerminateUser_Handler_NoContent(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	session.Role = models.RoleSupervisor
	userID := uuid.New()

	m.admin.EXPECT().TerminateUser(gomock.Any(), session, userID).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/users/"+userID.String(), nil, authHeaders(m, session))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogin_Handler_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New(), Username: "dispatcher7", Role: models.RoleUser, AgencyID: uuid.New()}
	reqBody := LoginRequest{Username: "dispatcher7", Password: "hunter2"}

	m.auth.EXPECT().
		Login(gomock.Any(), "dispatcher7", "hunter2").
		Return("signed-token", user, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", marshalBody(t, reqBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "dispatcher7", resp.User.Username)
}

func TestLogin_Handler_InvalidCredentials(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LoginRequest{Username: "dispatcher7", Password: "guess"}

	m.auth.EXPECT().
		Login(gomock.Any(), "dispatcher7", "guess").
		Return("", nil, fmt.Errorf("service: invalid credentials: %w", apperrors.ErrAuthentication)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", marshalBody(t, reqBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStats_Handler_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := testSession()
	stats := &models.Stats{TotalIncidents: 12, ActiveIncidents: 3, AvailableUnits: 5, TotalUnits: 8}

	m.dispatch.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, authHeaders(m, session))

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ActiveIncidents)
	assert.Equal(t, 5, resp.AvailableUnits)
}

func TestHealthCheck_Handler(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
