package controllers

import (
	"net/http"

	"hotel-admin/services"
	"hotel-admin/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// List handles GET /api/users. This is the only paginated screen, so
// page/totalPages in the response are meaningful here.
func (c *UserController) List(ctx *gin.Context) {
	applyListParams(ctx, c.Svc.List)
	ctx.JSON(http.StatusOK, c.Svc.View())
}

func (c *UserController) Create(ctx *gin.Context) {
	var draft map[string]any
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := c.Svc.Create(draft)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (c *UserController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch map[string]any
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := c.Svc.Update(id, patch)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.Svc.Remove(id); err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
