package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/taskdeck-app/taskdeck/backend/database"
)

type overviewHandler struct {
	responder   Responder
	logger      zerolog.Logger
	clientRepo  *database.ClientRepo
	projectRepo *database.ProjectRepo
	taskRepo    *database.TaskRepo
	userRepo    *database.UserRepo
}

func newOverviewHandler(clientRepo *database.ClientRepo, projectRepo *database.ProjectRepo, taskRepo *database.TaskRepo, userRepo *database.UserRepo) overviewHandler {
	logger := log.With().Str("handlerName", "overviewHandler").Logger()

	return overviewHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// Overview carries the dashboard entity counts
type Overview struct {
	Clients  int64 `json:"clients"`
	Projects int64 `json:"projects"`
	Tasks    int64 `json:"tasks"`
	Users    int64 `json:"users"`
}

// getOverview runs the four count queries concurrently
func (h overviewHandler) getOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var overview Overview

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			n, err := h.clientRepo.Count(ctx)
			overview.Clients = n
			return err
		})
		g.Go(func() error {
			n, err := h.projectRepo.Count(ctx)
			overview.Projects = n
			return err
		})
		g.Go(func() error {
			n, err := h.taskRepo.Count(ctx)
			overview.Tasks = n
			return err
		})
		g.Go(func() error {
			n, err := h.userRepo.Count(ctx)
			overview.Users = n
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count entities", "overview", err))
			return
		}

		h.responder.WriteJSON(w, overview)
	}
}
