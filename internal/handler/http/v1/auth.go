package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/service"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// JWTAuthMiddleware - middleware для аутентификации по Bearer-токену
func JWTAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := authService.ParseToken(tokenString)
		if err != nil {
			log.WithError(err).Warn("Invalid authorization token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(sessionContextKey, *session)
		c.Next()
	}
}

// sessionFromContext достает сессию, положенную middleware
func sessionFromContext(c *gin.Context) (service.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return service.Session{}, false
	}
	session, ok := value.(service.Session)
	return session, ok
}

// @Summary Log in to the console
// @Description Authenticate with username and password, returns a Bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  ModelToUserResponse(user),
	})
}

// @Summary Get the current user
// @Description Get the record of the authenticated caller
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/me [get]
func (h *Handler) currentUser(c *gin.Context) {
	log := h.logger.WithField("method", "currentUser")

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Get agency by ID
// @Description Get the caller's agency. Other agencies are not accessible.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Success 200 {object} AgencyResponse
// @Failure 400 {object} map[string]string "Invalid agency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /agency/{id} [get]
func (h *Handler) getAgency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agency ID"})
		return
	}
	log := h.logger.WithField("method", "getAgency").WithField("id", id)

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	agency, err := h.authService.GetAgency(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToAgencyResponse(agency))
}
