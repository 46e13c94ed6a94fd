package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/faisalthe1/AI-Study-Planner/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Profile   *apiHandler.ProfileHandler
	Course    *apiHandler.CourseHandler
	Task      *apiHandler.TaskHandler
	Session   *apiHandler.SessionHandler
	Planner   *apiHandler.PlannerHandler
	Dashboard *apiHandler.DashboardHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)

	// Protected routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))

	r.GET("/api/v1/courses", authMiddleware(handlers.Course.GetCourses))
	r.POST("/api/v1/courses", authMiddleware(handlers.Course.CreateCourse))
	r.PUT("/api/v1/courses/{id}", authMiddleware(handlers.Course.UpdateCourse))
	r.DELETE("/api/v1/courses/{id}", authMiddleware(handlers.Course.DeleteCourse))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/v1/sessions", authMiddleware(handlers.Session.GetSessions))
	r.POST("/api/v1/sessions", authMiddleware(handlers.Session.CreateSession))
	r.PUT("/api/v1/sessions/{id}", authMiddleware(handlers.Session.UpdateSession))
	r.DELETE("/api/v1/sessions/{id}", authMiddleware(handlers.Session.DeleteSession))

	r.GET("/api/v1/dashboard", authMiddleware(handlers.Dashboard.GetDashboard))
	r.POST("/api/v1/schedule/generate", authMiddleware(handlers.Planner.GenerateSchedule))

	return r
}
