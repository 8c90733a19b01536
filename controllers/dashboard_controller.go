package controllers

import (
	"net/http"

	"hotel-admin/services"
	"hotel-admin/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// Get handles GET /api/dashboard.
func (c *DashboardController) Get(ctx *gin.Context) {
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.State())
}

// RequestDelete opens the confirmation step for one recent booking.
// POST /api/dashboard/recent/:id/delete
func (c *DashboardController) RequestDelete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	c.Svc.RequestDelete(id)
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.State())
}

// CancelDelete backs out of the confirmation step.
// POST /api/dashboard/recent/delete/cancel
func (c *DashboardController) CancelDelete(ctx *gin.Context) {
	c.Svc.CancelDelete()
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.State())
}

// ConfirmDelete removes the pending row and flashes the notification.
// POST /api/dashboard/recent/delete/confirm
func (c *DashboardController) ConfirmDelete(ctx *gin.Context) {
	c.Svc.ConfirmDelete()
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.State())
}
