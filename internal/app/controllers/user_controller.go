package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/middleware"
)

// UserController handles user browsing and loyalty point endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns all registered users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User "All users"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns a single user by id
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User detail"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUserPoints lists a user's loyalty point awards
// @Summary List user points
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Point "Point awards"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/points [get]
func (c *UserController) GetUserPoints(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	points, err := c.userService.GetUserPoints(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, points)
}

// GetUserPointsSummary aggregates a user's earned, spent and remaining points
// @Summary User points summary
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.PointsSummary "Aggregated totals"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/points/summary [get]
func (c *UserController) GetUserPointsSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.userService.GetUserPointsSummary(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetUserCashOuts lists a user's point cash-out requests
// @Summary List user cash-outs
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.RefPointCashOut "Cash-out requests"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/cash-outs [get]
func (c *UserController) GetUserCashOuts(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cashOuts, err := c.userService.GetUserCashOuts(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cashOuts)
}

// AwardPoints credits loyalty points to a user
// @Summary Award points
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.CreatePointRequest true "Point award"
// @Success 201 {object} models.Point "Recorded award"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/points [post]
func (c *UserController) AwardPoints(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreatePointRequest
	if !bindJSON(ctx, &req) {
		return
	}

	point, err := c.userService.AwardPoints(ctx, id, req.Points, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, point)
}
