package api

import (
	"github.com/taskdeck-app/taskdeck/backend/cache"
	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, registry *cache.Registry, auth *services.AuthService) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(auth),
		clientHandler:       newClientHandler(database.ClientRepo(), registry),
		projectHandler:      newProjectHandler(database.ProjectRepo(), registry),
		taskHandler:         newTaskHandler(database.TaskRepo(), database.SubTaskRepo(), database.TagRepo(), database.TimeEntryRepo(), registry),
		teamHandler:         newTeamHandler(database.TeamRepo(), database.UserRepo()),
		commentHandler:      newCommentHandler(database.CommentRepo(), database.TaskRepo(), registry),
		notificationHandler: newNotificationHandler(database.NotificationRepo()),
		overviewHandler:     newOverviewHandler(database.ClientRepo(), database.ProjectRepo(), database.TaskRepo(), database.UserRepo()),
	}
}
