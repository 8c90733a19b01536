package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-admin/models"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

// parseID rejects non-numeric path ids before they reach a service.
func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id",
		})
		return 0, false
	}
	return id, true
}

// respondMutationError maps service errors onto the status codes the
// screens expect: validation problems are 400, unknown ids 404,
// anything else (store write failures) 500.
func respondMutationError(ctx *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": vErr.Error(),
			"fields":  vErr.Missing,
		})
	case errors.Is(err, models.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Record not found",
		})
	case strings.Contains(err.Error(), "decode"):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
	default:
		log.Printf("❌ DB ERROR: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Save failed",
			"details": err.Error(),
		})
	}
}

// applyListParams routes the optional query parameters to the matching
// intents before the view is rendered. Repeating ?sort=<field> flips
// the direction, same as clicking the column header twice.
func applyListParams[T services.Entity](ctx *gin.Context, list *services.List[T]) {
	if q, ok := ctx.GetQuery("search"); ok {
		list.SetSearch(q)
	}
	if field, ok := ctx.GetQuery("sort"); ok {
		list.SetSort(field)
	}
	if raw, ok := ctx.GetQuery("page"); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			list.SetPage(n)
		}
	}
}

// ----------------------------------------------------
// 1. List Bookings (GET /api/bookings)
// ----------------------------------------------------

func (c *BookingController) List(ctx *gin.Context) {
	applyListParams(ctx, c.Svc.List)
	ctx.JSON(http.StatusOK, c.Svc.View())
}

// ----------------------------------------------------
// 2. Create Booking (POST /api/bookings)
// ----------------------------------------------------

func (c *BookingController) Create(ctx *gin.Context) {
	var draft map[string]any
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.Svc.Create(draft)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, booking)
}

// ----------------------------------------------------
// 3. Update Booking (PATCH/PUT /api/bookings/:id)
// ----------------------------------------------------

func (c *BookingController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch map[string]any
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.Svc.Update(id, patch)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}

// ----------------------------------------------------
// 4. Delete Booking (DELETE /api/bookings/:id)
// ----------------------------------------------------

func (c *BookingController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	// Deleting an absent id is a success no-op, matching the screens'
	// filter-style delete.
	if err := c.Svc.Remove(id); err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Booking deleted successfully",
	})
}
