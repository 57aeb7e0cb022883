package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"task-manager-api/config"
	"task-manager-api/middleware"
	"task-manager-api/models"
	"task-manager-api/utils"
	"task-manager-api/views"
)

// taskInput is the request body for both create and update. Update
// rewrites every field; there are no partial-patch semantics.
type taskInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
}

func setupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Requests without an Origin header (same-origin, curl) always pass.
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-API-Key"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, "<h1>Task Manager API</h1><p>Welcome! The server is running.</p>")
	})

	api := r.Group("/api", middleware.APIKeyAuth(middleware.StaticKeyVerifier(cfg.APIKey)))

	// GET /api/tasks - List tasks with filtering and sorting
	api.GET("/tasks", func(c *gin.Context) {
		tasks, err := utils.GetTasks(c.Query("status"), c.Query("sortBy"), c.Query("order"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	})

	// GET /api/tasks/board - Tasks bucketed into board columns
	api.GET("/tasks/board", func(c *gin.Context) {
		tasks, err := utils.GetTasks(c.Query("status"), c.Query("sortBy"), c.Query("order"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, views.BuildBoard(tasks, time.Now()))
	})

	// POST /api/tasks - Create a new task
	api.POST("/tasks", func(c *gin.Context) {
		var input taskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		task, err := utils.AddTask(input.Title, input.Description, input.Status, input.DueDate)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, task)
	})

	// PUT /api/tasks/:id - Update an existing task
	api.PUT("/tasks/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
			return
		}

		var input taskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		task, err := utils.UpdateTask(id, input.Title, input.Description, input.Status, input.DueDate)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	})

	// DELETE /api/tasks/:id - Delete a task
	api.DELETE("/tasks/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
			return
		}

		if err := utils.DeleteTask(id); err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task was deleted!"})
	})

	return r
}

// handleServiceError maps service failures onto the response contract.
// Store errors are logged but never surfaced to the caller.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, models.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := utils.InitDB(cfg.DBPath); err != nil {
		log.Fatal(err)
	}
	defer utils.CloseDB()

	r := setupRouter(cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
