package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialconnect/backend/internal/services"
)

// AdminHandler handles the staff administration surface. The RequireStaff
// middleware guards every route here.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// RegisterAdminRoutes registers staff-only routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.POST("/users/:id/deactivate", h.DeactivateUser)
	g.GET("/posts", h.ListPosts)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/stats", h.GetStats)
}

// ListUsers returns every account
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeactivateUser flips an account to inactive
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.DeactivateUser(userID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deactivated"})
}

// ListPosts returns every post including inactive ones
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.adminService.ListPosts()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// DeletePost hard-deletes a post and its dependent rows
func (h *AdminHandler) DeletePost(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.adminService.DeletePost(postID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetStats returns the dashboard counters
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminService.Stats()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
