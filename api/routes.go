package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up routes that do not require a bearer token
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/forgot-password", handlers.authHandler.forgotPassword())
		r.Post("/auth/reset-password", handlers.authHandler.resetPassword())
	})
}

// setupFrontendRoutes sets up all routes with authentication
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Client Handler endpoints
		r.Get("/clients", handlers.clientHandler.getAllClients())
		r.Get("/client/{clientID}", handlers.clientHandler.getClient())
		r.Post("/client", handlers.clientHandler.createClient())
		r.Put("/client/{clientID}", handlers.clientHandler.updateClient())
		r.Delete("/client/{clientID}", handlers.clientHandler.deleteClient())

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/share", handlers.projectHandler.shareProject())
		r.Get("/project/{projectID}/tasks", handlers.taskHandler.getProjectTasks())

		// Task Handler endpoints
		r.Get("/tasks", handlers.taskHandler.getAllTasks())
		r.Get("/task/{taskID}", handlers.taskHandler.getTask())
		r.Post("/task", handlers.taskHandler.createTask())
		r.Put("/task/{taskID}", handlers.taskHandler.updateTask())
		r.Patch("/task/{taskID}/status", handlers.taskHandler.toggleTaskStatus())
		r.Delete("/task/{taskID}", handlers.taskHandler.deleteTask())
		r.Post("/task/{taskID}/subtask", handlers.taskHandler.createSubTask())
		r.Patch("/subtask/{subTaskID}/toggle", handlers.taskHandler.toggleSubTask())
		r.Post("/task/{taskID}/tag", handlers.taskHandler.createTag())
		r.Post("/task/{taskID}/time-entry", handlers.taskHandler.createTimeEntry())
		r.Get("/task/{taskID}/time-entries", handlers.taskHandler.getTimeEntries())

		// Team Handler endpoints
		r.Get("/teams", handlers.teamHandler.getAllTeams())
		r.Post("/team", handlers.teamHandler.createTeam())
		r.Post("/team/{teamID}/member", handlers.teamHandler.addTeamMember())

		// Comment Handler endpoints
		r.Get("/project/{projectID}/comments", handlers.commentHandler.getProjectComments())
		r.Get("/task/{taskID}/comments", handlers.commentHandler.getTaskComments())
		r.Post("/project/{projectID}/comment", handlers.commentHandler.createProjectComment())
		r.Post("/task/{taskID}/comment", handlers.commentHandler.createTaskComment())
		r.Put("/comment/{commentID}", handlers.commentHandler.updateComment())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		// Notification Handler endpoints
		r.Get("/notifications", handlers.notificationHandler.getNotifications())
		r.Patch("/notification/{notificationID}/read", handlers.notificationHandler.markNotificationRead())

		// Overview Handler endpoints
		r.Get("/overview", handlers.overviewHandler.getOverview())
	})
}
