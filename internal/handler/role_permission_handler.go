package handler

import (
	"net/http"
	"strconv"

	"leavehub/internal/middleware"
	"leavehub/internal/service"
	"leavehub/pkg/apperror"
	"leavehub/pkg/pagination"
	"leavehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type RolePermissionHandler struct {
	service service.RolePermissionService
}

// NewRolePermissionHandler sets up the routing dependencies for role permission endpoints
func NewRolePermissionHandler(svc service.RolePermissionService) *RolePermissionHandler {
	return &RolePermissionHandler{service: svc}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *RolePermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	rp := router.Group("/role-permission")
	{
		rp.GET("/all", h.List)
		rp.GET("/role/:roleId", h.GetByRole)
		rp.GET("/:id", h.GetByID)
		rp.POST("", h.Create)
		rp.PUT("/:id", h.Update)
		rp.DELETE("/:id", h.Delete)
	}
}

// List returns a page of role permissions, newest first
// @Summary      List role permissions
// @Description  Returns role permissions ordered by id descending with pagination metadata
// @Tags         role-permission
// @Produce      json
// @Param        page   query     int  false  "Zero-based page number"  default(0)
// @Param        limit  query     int  false  "Page size, capped at 100"  default(10)
// @Success      200    {object}  service.RolePermissionPage
// @Failure      400    {object}  response.Envelope
// @Failure      404    {object}  response.Envelope
// @Failure      500    {object}  response.Envelope
// @Router       /role-permission/all [get]
func (h *RolePermissionHandler) List(c *gin.Context) {
	params, err := pagination.Parse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Page must not be negative"))
		return
	}

	// The query parameter is zero-based; the service's pagination is one-based.
	page, err := h.service.FindAndCount(c.Request.Context(), params.Page+1, params.Limit)
	if err != nil {
		c.JSON(apperror.StatusOf(err), response.Message(apperror.MessageOf(err)))
		return
	}

	if len(page.Items) == 0 {
		c.JSON(http.StatusNotFound, response.Message("No role permissions found"))
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetByID returns a single role permission
// @Summary      Get role permission by id
// @Tags         role-permission
// @Produce      json
// @Param        id   path      int  true  "Role permission ID"
// @Success      200  {object}  service.RolePermissionDTO
// @Failure      404  {object}  response.Envelope
// @Router       /role-permission/{id} [get]
func (h *RolePermissionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid id"))
		return
	}

	dto, err := h.service.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(apperror.StatusOf(err), response.Message(apperror.MessageOf(err)))
		return
	}

	c.JSON(http.StatusOK, dto)
}

// GetByRole returns every grant of one role; an empty list is a valid result
// @Summary      Get role permissions by role
// @Tags         role-permission
// @Produce      json
// @Param        roleId  path      int  true  "Role ID"
// @Success      200     {array}   service.RolePermissionDTO
// @Failure      500     {object}  response.Envelope
// @Router       /role-permission/role/{roleId} [get]
func (h *RolePermissionHandler) GetByRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid role id"))
		return
	}

	items, err := h.service.FindByRoleID(c.Request.Context(), roleID)
	if err != nil {
		c.JSON(apperror.StatusOf(err), response.Message(apperror.MessageOf(err)))
		return
	}

	c.JSON(http.StatusOK, items)
}

// Create stores a new role permission grant
// @Summary      Create role permission
// @Tags         role-permission
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RolePermissionDTO  true  "Role permission payload"
// @Success      201      {object}  response.Envelope{data=service.RolePermissionDTO}
// @Failure      400      {object}  response.Envelope
// @Failure      500      {object}  response.Envelope
// @Router       /role-permission [post]
func (h *RolePermissionHandler) Create(c *gin.Context) {
	var req service.RolePermissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	actor := middleware.CurrentActor(c)
	dto, err := h.service.Save(c.Request.Context(), &req, actor)
	if err != nil {
		c.JSON(apperror.StatusOf(err), response.Message(apperror.MessageOf(err)))
		return
	}

	c.JSON(http.StatusCreated, response.WithData("Role permission created successfully", dto))
}

// Update fully replaces a role permission grant
// @Summary      Update role permission
// @Description  Replaces every field of the grant; omitted fields are zeroed
// @Tags         role-permission
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Role permission ID"
// @Param        payload  body      service.RolePermissionDTO  true  "Role permission payload"
// @Success      200      {object}  response.Envelope{data=service.RolePermissionDTO}
// @Failure      400      {object}  response.UpdateFailure
// @Failure      404      {object}  response.UpdateFailure
// @Failure      500      {object}  response.UpdateFailure
// @Router       /role-permission/{id} [put]
func (h *RolePermissionHandler) Update(c *gin.Context) {
	// A missing or malformed id becomes 0 and the service rejects it.
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req service.RolePermissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.UpdateError(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	actor := middleware.CurrentActor(c)
	dto, err := h.service.Update(c.Request.Context(), &req, actor, uint(id))
	if err != nil {
		status := apperror.StatusOf(err)
		c.JSON(status, response.UpdateError(status, apperror.MessageOf(err)))
		return
	}

	c.JSON(http.StatusOK, response.WithData("Role permission updated successfully", dto))
}

// Delete removes a role permission grant
// @Summary      Delete role permission
// @Tags         role-permission
// @Produce      json
// @Param        id   path      int  true  "Role permission ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /role-permission/{id} [delete]
func (h *RolePermissionHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.service.DeleteByID(c.Request.Context(), uint(id)); err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusNotFound, response.Message("Record not found"))
			return
		}
		// Everything that is not a miss collapses into a generic failure.
		c.JSON(http.StatusInternalServerError, response.Message("Failed to delete record"))
		return
	}

	c.JSON(http.StatusOK, response.Message("Record deleted successfully"))
}
