package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/config"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SupervisorSessionStore хранит отметки о пройденной проверке супервизора.
// Отметка живет не дольше сессии консоли и нигде не персистится.
type SupervisorSessionStore interface {
	MarkVerified(ctx context.Context, tokenID string, ttl time.Duration) error
	IsVerified(ctx context.Context, tokenID string) (bool, error)
}

// AdminService определяет контракт административных операций,
// закрытых проверкой супервизора
type AdminService interface {
	VerifySupervisor(ctx context.Context, session Session, password string) error
	ListUsers(ctx context.Context, session Session) ([]*models.User, error)
	SuspendUser(ctx context.Context, session Session, userID uuid.UUID) (*models.User, error)
	UnsuspendUser(ctx context.Context, session Session, userID uuid.UUID) (*models.User, error)
	TerminateUser(ctx context.Context, session Session, userID uuid.UUID) error
	SetUserRole(ctx context.Context, session Session, userID uuid.UUID, role models.Role) (*models.User, error)
	CreateUnit(ctx context.Context, session Session, unit *models.Unit) error
	RemoveUnit(ctx context.Context, session Session, unitID uuid.UUID) error
}

type adminService struct {
	users    UserRepository
	agencies AgencyRepository
	dispatch DispatchRepository
	sessions SupervisorSessionStore
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewAdminService(
	users UserRepository,
	agencies AgencyRepository,
	dispatch DispatchRepository,
	sessions SupervisorSessionStore,
	logger *logrus.Logger,
	cfg *config.Config,
) AdminService {
	return &adminService{
		users:    users,
		agencies: agencies,
		dispatch: dispatch,
		sessions: sessions,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// VerifySupervisor сверяет введенный пароль с секретом агентства вызывающего
// и ставит отметку на время сессии. Ответ об отказе единый: не раскрываем,
// что именно не совпало.
func (s *adminService) VerifySupervisor(ctx context.Context, session Session, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "admin",
		"method":    "VerifySupervisor",
		"user_id":   session.UserID,
		"agency_id": session.AgencyID,
	})
	log.Info("Supervisor verification attempt")

	if session.Role != models.RoleSupervisor {
		log.Warn("Supervisor verification by non-supervisor role")
		return fmt.Errorf("service: supervisor verification failed: %w", apperrors.ErrAuthorization)
	}

	agency, err := s.agencies.GetAgencyByID(ctx, session.AgencyID)
	if err != nil {
		log.WithError(err).Warn("Agency lookup failed during supervisor verification")
		return fmt.Errorf("service: supervisor verification failed: %w", apperrors.ErrAuthorization)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agency.SupervisorPasswordHash), []byte(password)); err != nil {
		log.Warn("Supervisor verification with invalid password")
		return fmt.Errorf("service: supervisor verification failed: %w", apperrors.ErrAuthorization)
	}

	ttl := s.cfg.SupervisorSessionTTL
	if !session.ExpiresAt.IsZero() {
		// Отметка не должна пережить сам токен
		if remaining := time.Until(session.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return fmt.Errorf("service: supervisor verification failed: %w", apperrors.ErrAuthorization)
	}

	if err := s.sessions.MarkVerified(ctx, session.TokenID, ttl); err != nil {
		log.WithError(err).Error("Failed to mark supervisor session verified")
		return fmt.Errorf("service: could not mark supervisor session: %w", err)
	}

	log.Info("Supervisor verified successfully")
	return nil
}

// requireSupervisor - обязательная проверка перед каждой административной
// операцией: роль супервизора и действующая отметка текущей сессии
func (s *adminService) requireSupervisor(ctx context.Context, session Session) error {
	if session.Role != models.RoleSupervisor {
		return fmt.Errorf("service: supervisor access required: %w", apperrors.ErrAuthorization)
	}

	verified, err := s.sessions.IsVerified(ctx, session.TokenID)
	if err != nil {
		return fmt.Errorf("service: could not check supervisor session: %w", err)
	}
	if !verified {
		return fmt.Errorf("service: supervisor access required: %w", apperrors.ErrAuthorization)
	}
	return nil
}

// ListUsers возвращает пользователей агентства вызывающего
func (s *adminService) ListUsers(ctx context.Context, session Session) ([]*models.User, error) {
	if err := s.requireSupervisor(ctx, session); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx, session.AgencyID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// getAgencyUser загружает пользователя и проверяет принадлежность агентству
// вызывающего; чужие записи неотличимы от несуществующих
func (s *adminService) getAgencyUser(ctx context.Context, session Session, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	if user.AgencyID != session.AgencyID {
		return nil, fmt.Errorf("service: user %s: %w", userID, apperrors.ErrNotFound)
	}
	return user, nil
}

// SuspendUser блокирует пользователя, запись сохраняется
func (s *adminService) SuspendUser(ctx context.Context, session Session, userID uuid.UUID) (*models.User, error) {
	return s.setSuspended(ctx, session, userID, true)
}

// UnsuspendUser снимает блокировку пользователя
func (s *adminService) UnsuspendUser(ctx context.Context, session Session, userID uuid.UUID) (*models.User, error) {
	return s.setSuspended(ctx, session, userID, false)
}

func (s *adminService) setSuspended(ctx context.Context, session Session, userID uuid.UUID, suspended bool) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "admin",
		"method":    "setSuspended",
		"user_id":   userID,
		"suspended": suspended,
	})

	if err := s.requireSupervisor(ctx, session); err != nil {
		return nil, err
	}

	user, err := s.getAgencyUser(ctx, session, userID)
	if err != nil {
		return nil, err
	}

	user.Suspended = suspended
	if err := s.users.UpdateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User suspension state updated")
	return user, nil
}

// TerminateUser необратимо удаляет запись пользователя
func (s *adminService) TerminateUser(ctx context.Context, session Session, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "TerminateUser",
		"user_id": userID,
	})

	if err := s.requireSupervisor(ctx, session); err != nil {
		return err
	}

	if _, err := s.getAgencyUser(ctx, session, userID); err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to delete user in repository")
		return fmt.Errorf("service: could not terminate user: %w", err)
	}

	log.Info("User terminated")
	return nil
}

// SetUserRole меняет роль пользователя
func (s *adminService) SetUserRole(ctx context.Context, session Session, userID uuid.UUID, role models.Role) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "SetUserRole",
		"user_id": userID,
		"role":    role,
	})

	if err := s.requireSupervisor(ctx, session); err != nil {
		return nil, err
	}

	user, err := s.getAgencyUser(ctx, session, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.UpdateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user role: %w", err)
	}

	log.Info("User role updated")
	return user, nil
}

// CreateUnit регистрирует новый юнит агентства в статусе AVAILABLE
func (s *adminService) CreateUnit(ctx context.Context, session Session, unit *models.Unit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "CreateUnit",
		"callsign": unit.Callsign,
	})

	if err := s.requireSupervisor(ctx, session); err != nil {
		return err
	}

	if strings.TrimSpace(unit.Callsign) == "" {
		return fmt.Errorf("service: unit callsign is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(unit.Type) == "" {
		return fmt.Errorf("service: unit type is required: %w", apperrors.ErrValidation)
	}

	unit.Status = models.UnitAvailable
	unit.CurrentIncidentID = nil
	unit.AgencyID = session.AgencyID

	if err := s.dispatch.CreateUnit(ctx, unit); err != nil {
		log.WithError(err).Error("Failed to create unit in repository")
		return fmt.Errorf("service: could not create unit: %w", err)
	}

	log.Info("Unit created")
	return nil
}

// RemoveUnit удаляет юнит. Активное назначение сначала снимается штатным
// образом с записью в журнал инцидента, чтобы не оставить висячую ссылку.
func (s *adminService) RemoveUnit(ctx context.Context, session Session, unitID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "RemoveUnit",
		"unit_id": unitID,
	})

	if err := s.requireSupervisor(ctx, session); err != nil {
		return err
	}

	unit, err := s.dispatch.GetUnitByID(ctx, unitID)
	if err != nil {
		return fmt.Errorf("service: could not get unit: %w", err)
	}
	if unit.AgencyID != session.AgencyID {
		return fmt.Errorf("service: unit %s: %w", unitID, apperrors.ErrNotFound)
	}

	if unit.CurrentIncidentID != nil {
		incident, err := s.dispatch.GetIncidentByID(ctx, *unit.CurrentIncidentID)
		if err != nil {
			return fmt.Errorf("service: could not get incident for unit removal: %w", err)
		}

		incident.RemoveUnit(unit.ID)
		incident.AppendTimeline(s.now(), incident.Status, fmt.Sprintf("Unit %s released (unit removed)", unit.Callsign))

		unit.Status = models.UnitAvailable
		unit.CurrentIncidentID = nil

		if err := s.dispatch.ApplyRelease(ctx, incident, []*models.Unit{unit}); err != nil {
			log.WithError(err).Error("Failed to release unit before removal")
			return fmt.Errorf("service: could not release unit before removal: %w", err)
		}

		if err := s.dispatch.InvalidateIncidentCache(ctx, incident.ID); err != nil {
			log.WithError(err).Warn("Failed to invalidate incident cache")
		}
	}

	if err := s.dispatch.DeleteUnit(ctx, unitID); err != nil {
		log.WithError(err).Error("Failed to delete unit in repository")
		return fmt.Errorf("service: could not remove unit: %w", err)
	}

	log.Info("Unit removed")
	return nil
}
