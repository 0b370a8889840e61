package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/apperrors"
	"github.com/opslink/opslink_cad/internal/config"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с хранилищем пользователей
type UserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context, agencyID uuid.UUID) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AgencyRepository определяет контракт для работы с хранилищем агентств
type AgencyRepository interface {
	GetAgencyByID(ctx context.Context, id uuid.UUID) (*models.Agency, error)
}

// Session - данные аутентифицированного вызывающего, извлеченные из токена
type Session struct {
	UserID   uuid.UUID
	AgencyID uuid.UUID
	Role     models.Role
	TokenID  string
	// ExpiresAt нужен, чтобы отметка супервизора не переживала сам токен
	ExpiresAt time.Time
}

// Claims - утверждения JWT-токена консоли
type Claims struct {
	AgencyID string `json:"agency_id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService определяет контракт аутентификации
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	ParseToken(tokenString string) (*Session, error)
	CurrentUser(ctx context.Context, session Session) (*models.User, error)
	GetAgency(ctx context.Context, session Session, agencyID uuid.UUID) (*models.Agency, error)
}

type authService struct {
	users    UserRepository
	agencies AgencyRepository
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewAuthService(users UserRepository, agencies AgencyRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:    users,
		agencies: agencies,
		logger:   logger,
		cfg:      cfg,
	}
}

// Login проверяет учетные данные и выдает JWT-токен.
// Причина отказа (неизвестный пользователь, неверный пароль, блокировка)
// наружу не раскрывается.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		log.WithError(err).Warn("Login attempt for unknown user")
		return "", nil, fmt.Errorf("service: invalid credentials: %w", apperrors.ErrAuthentication)
	}

	if user.Suspended {
		log.Warn("Login attempt for suspended user")
		return "", nil, fmt.Errorf("service: invalid credentials: %w", apperrors.ErrAuthentication)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with invalid password")
		return "", nil, fmt.Errorf("service: invalid credentials: %w", apperrors.ErrAuthentication)
	}

	now := time.Now()
	claims := Claims{
		AgencyID: user.AgencyID.String(),
		Role:     string(user.Role),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return "", nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.Info("User logged in successfully")
	return token, user, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает сессию
func (s *authService) ParseToken(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: invalid token: %w", errors.Join(err, apperrors.ErrAuthentication))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("service: invalid token claims: %w", apperrors.ErrAuthentication)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("service: invalid token subject: %w", apperrors.ErrAuthentication)
	}
	agencyID, err := uuid.Parse(claims.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("service: invalid token agency: %w", apperrors.ErrAuthentication)
	}
	role, ok := models.ParseRole(claims.Role)
	if !ok {
		return nil, fmt.Errorf("service: invalid token role: %w", apperrors.ErrAuthentication)
	}

	session := &Session{
		UserID:   userID,
		AgencyID: agencyID,
		Role:     role,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// CurrentUser возвращает запись вызывающего пользователя
func (s *authService) CurrentUser(ctx context.Context, session Session) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get current user: %w", err)
	}
	return user, nil
}

// GetAgency возвращает агентство вызывающего; чужие агентства недоступны
func (s *authService) GetAgency(ctx context.Context, session Session, agencyID uuid.UUID) (*models.Agency, error) {
	if session.AgencyID != agencyID {
		return nil, fmt.Errorf("service: agency access denied: %w", apperrors.ErrAuthorization)
	}

	agency, err := s.agencies.GetAgencyByID(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get agency: %w", err)
	}
	return agency, nil
}
