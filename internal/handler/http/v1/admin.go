package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opslink/opslink_cad/internal/models"
	"github.com/opslink/opslink_cad/internal/service"
)

// @Summary Verify supervisor password
// @Description Check the supervisor password and unlock admin operations for the current session.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param credentials body VerifySupervisorRequest true "Supervisor password"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Verification failed"
// @Router /supervisor/verify [post]
func (h *Handler) verifySupervisor(c *gin.Context) {
	log := h.logger.WithField("method", "verifySupervisor")

	var input VerifySupervisorRequest
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

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.adminService.VerifySupervisor(c.Request.Context(), session, input.Password); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// @Summary Get a list of agency users
// @Description Get all users of the caller's agency. Requires a verified supervisor session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Suspend a user
// @Description Block a user from logging in. The record is kept. Requires a verified supervisor session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/suspend [patch]
func (h *Handler) suspendUser(c *gin.Context) {
	h.setUserSuspended(c, "suspendUser", h.adminService.SuspendUser)
}

// @Summary Unsuspend a user
// @Description Lift the suspension and allow the user to log in again. Requires a verified supervisor session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/unsuspend [patch]
func (h *Handler) unsuspendUser(c *gin.Context) {
	h.setUserSuspended(c, "unsuspendUser", h.adminService.UnsuspendUser)
}

func (h *Handler) setUserSuspended(c *gin.Context, method string, op func(ctx context.Context, session service.Session, userID uuid.UUID) (*models.User, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", method).WithField("user_id", id)

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := op(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Change user role
// @Description Set a user's role to user or supervisor. Requires a verified supervisor session.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param role body UpdateUserRoleRequest true "Role change request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/role [patch]
func (h *Handler) setUserRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "setUserRole").WithField("user_id", id)

	var input UpdateUserRoleRequest
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

	role, ok := models.ParseRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.adminService.SetUserRole(c.Request.Context(), session, id, role)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Terminate a user
// @Description Permanently delete a user record. Requires a verified supervisor session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (h *Handler) terminateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "terminateUser").WithField("user_id", id)

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.adminService.TerminateUser(c.Request.Context(), session, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a unit
// @Description Register a new unit in AVAILABLE status. Requires a verified supervisor session.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unit body CreateUnitRequest true "Unit creation request"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 409 {object} map[string]string "Callsign already taken"
// @Router /units [post]
func (h *Handler) createUnit(c *gin.Context) {
	log := h.logger.WithField("method", "createUnit")

	var input CreateUnitRequest
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

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	unit := &models.Unit{
		Callsign: input.Callsign,
		Type:     input.Type,
	}

	if err := h.adminService.CreateUnit(c.Request.Context(), session, unit); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUnitResponse(unit))
}

// @Summary Remove a unit
// @Description Delete a unit. An active assignment is released first with a timeline record. Requires a verified supervisor session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 204 "Unit deleted"
// @Failure 400 {object} map[string]string "Invalid unit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor authorization required"
// @Failure 404 {object} map[string]string "Unit not found"
// @Router /units/{id} [delete]
func (h *Handler) removeUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit ID"})
		return
	}
	log := h.logger.WithField("method", "removeUnit").WithField("unit_id", id)

	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.adminService.RemoveUnit(c.Request.Context(), session, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
