package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/routes"
	"hotel-admin/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	store, err := config.OpenStore()
	if err != nil {
		log.Fatalf("❌ Store open failed: %v", err)
	}
	log.Println("✅ Persistence store ready.")

	// Initialize services (each loads its collection once, here)
	bookingService := services.NewBookingService(store)
	roomService := services.NewRoomService(store)
	userService := services.NewUserService(store)
	dashboardService := services.NewDashboardService()

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(roomService)
	userController := controllers.NewUserController(userService)
	dashboardController := controllers.NewDashboardController(dashboardService)

	// Build router
	router := routes.SetupRouter(bookingController, roomController, userController, dashboardController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
