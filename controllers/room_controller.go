package controllers

import (
	"log"
	"net/http"

	"hotel-admin/models"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

type roomStatusPayload struct {
	Status string `json:"status"`
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------

func (c *RoomController) List(ctx *gin.Context) {
	applyListParams(ctx, c.Svc.List)
	ctx.JSON(http.StatusOK, c.Svc.View())
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (c *RoomController) Create(ctx *gin.Context) {
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

	room, err := c.Svc.Create(draft)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH/PUT /api/rooms/:id)
// ----------------------------------------------------

func (c *RoomController) Update(ctx *gin.Context) {
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

	room, err := c.Svc.Update(id, patch)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Update Room Status (PATCH /api/rooms/:id/status)
// ----------------------------------------------------

func (c *RoomController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var payload roomStatusPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room, err := c.Svc.SetStatus(id, payload.Status)
	if err != nil {
		respondMutationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (c *RoomController) Delete(ctx *gin.Context) {
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
		"message": "Room deleted successfully",
	})
}

// ----------------------------------------------------
// 6. Room Categories (GET /api/categories)
// ----------------------------------------------------

// GetCategories serves the fixed category set the booking and room
// forms offer.
func GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.RoomCategories)
}
