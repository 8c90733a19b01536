package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin/controllers"
	"hotel-admin/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the API surface.
func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	uc *controllers.UserController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.POST("", bc.Create)
			bookings.PATCH("/:id", bc.Update)
			bookings.PUT("/:id", bc.Update)
			bookings.DELETE("/:id", bc.Delete)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.List)
			rooms.POST("", rc.Create)
			rooms.PATCH("/:id", rc.Update)
			rooms.PUT("/:id", rc.Update)
			rooms.PATCH("/:id/status", rc.UpdateStatus)
			rooms.DELETE("/:id", rc.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", uc.List)
			users.POST("", uc.Create)
			users.PATCH("/:id", uc.Update)
			users.PUT("/:id", uc.Update)
			users.DELETE("/:id", uc.Delete)
		}

		api.GET("/categories", controllers.GetCategories)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", dc.Get)
			dashboard.POST("/recent/:id/delete", dc.RequestDelete)
			dashboard.POST("/recent/delete/cancel", dc.CancelDelete)
			dashboard.POST("/recent/delete/confirm", dc.ConfirmDelete)
		}
	}

	return r
}
