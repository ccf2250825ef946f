package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo          *UserRepo
	teamRepo          *TeamRepo
	clientRepo        *ClientRepo
	projectRepo       *ProjectRepo
	taskRepo          *TaskRepo
	subTaskRepo       *SubTaskRepo
	tagRepo           *TagRepo
	timeEntryRepo     *TimeEntryRepo
	commentRepo       *CommentRepo
	notificationRepo  *NotificationRepo
	passwordResetRepo *PasswordResetRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:          NewUserRepo(db),
		teamRepo:          NewTeamRepo(db),
		clientRepo:        NewClientRepo(db),
		projectRepo:       NewProjectRepo(db),
		taskRepo:          NewTaskRepo(db),
		subTaskRepo:       NewSubTaskRepo(db),
		tagRepo:           NewTagRepo(db),
		timeEntryRepo:     NewTimeEntryRepo(db),
		commentRepo:       NewCommentRepo(db),
		notificationRepo:  NewNotificationRepo(db),
		passwordResetRepo: NewPasswordResetRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) TeamRepo() *TeamRepo {
	return d.teamRepo
}

func (d Database) ClientRepo() *ClientRepo {
	return d.clientRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TaskRepo() *TaskRepo {
	return d.taskRepo
}

func (d Database) SubTaskRepo() *SubTaskRepo {
	return d.subTaskRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) TimeEntryRepo() *TimeEntryRepo {
	return d.timeEntryRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) NotificationRepo() *NotificationRepo {
	return d.notificationRepo
}

func (d Database) PasswordResetRepo() *PasswordResetRepo {
	return d.passwordResetRepo
}
