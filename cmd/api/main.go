package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/api/middleware"
	"github.com/slmontgomery/bugtracking/internal/api/routes"
	"github.com/slmontgomery/bugtracking/internal/config"
	"github.com/slmontgomery/bugtracking/internal/config/db"
	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&team.Team{},
		&team.Membership{},
		&team.Invitation{},
		&project.Project{},
		&project.Membership{},
		&ticket.Ticket{},
		&ticket.Comment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
