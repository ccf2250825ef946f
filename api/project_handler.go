package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/cache"
	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/pipeline"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	registry    *cache.Registry
	pipe        *pipeline.Pipeline[models.Project]
}

func newProjectHandler(projectRepo *database.ProjectRepo, registry *cache.Registry) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		registry:    registry,
		pipe: pipeline.New(pipeline.Config[models.Project]{
			Entity: "project",
			Create: validate.ProjectCreate(),
			Update: validate.ProjectUpdate(),
			Store:  projectRepo,
			// The list route is cached per user; a prefix invalidation
			// clears every user's rendering at once.
			Cache:    cache.PrefixInvalidator{Registry: registry},
			ListPath: "/projects",
			DetailPath: func(id uuid.UUID) string {
				return "/project/" + id.String()
			},
			Logger: logger,
		}),
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total,omitempty"`
}

// getAllProjects retrieves the projects the acting user owns or is shared into
// @Summary Get all projects
// @Description Retrieves all projects visible to the acting user
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		listPath := "/projects?user=" + userID.String()
		if payload, ok := h.registry.Get(listPath); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		projects, err := h.projectRepo.FindAllByUser(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		response := ProjectCollection{Projects: projects, Total: len(projects)}
		payload, merr := marshalForCache(response)
		if merr != nil {
			h.responder.WriteError(w, merr)
			return
		}
		h.registry.Put(listPath, payload)
		h.responder.WriteRaw(w, payload)
	}
}

// getProject is the read projector: the project plus its full eager
// relationship traversal. A missing root is a 404, not an envelope.
// @Summary Get project detail
// @Description Retrieves a project with client, owner, team, shared users, tasks and comments
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project detail"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		detailPath := "/project/" + projectID.String()
		if payload, ok := h.registry.Get(detailPath); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		project, err := h.projectRepo.FindDetail(r.Context(), projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		payload, merr := marshalForCache(project)
		if merr != nil {
			h.responder.WriteError(w, merr)
			return
		}
		h.registry.Put(detailPath, payload)
		h.responder.WriteRaw(w, payload)
	}
}

// createProject creates a new project owned by the acting user
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} pipeline.Envelope "Created project"
// @Failure 400 {object} pipeline.Envelope "Validation failure with field errors"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		input["userId"] = userID.String()

		env := h.pipe.Create(r.Context(), input)
		h.responder.WriteEnvelope(w, env, true)
	}
}

// updateProject applies a partial validated payload over an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.Update(r.Context(), projectID, input)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// shareProject grants another user access to a project
// @Summary Share project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Router /project/{projectID}/share [post]
func (h projectHandler) shareProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, fieldErrs := validate.MemberAdd().Validate(input)
		if fieldErrs != nil {
			h.responder.WriteEnvelope(w, pipeline.Invalid(fieldErrs), false)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteEnvelope(w, pipeline.NotFound("project"), false)
			return
		}

		if err := h.projectRepo.Share(r.Context(), projectID, fields["user_id"].(uuid.UUID)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("share project", "project", err))
			return
		}
		h.registry.InvalidatePrefix("/projects")
		h.registry.Invalidate("/project/" + projectID.String())

		h.responder.WriteEnvelope(w, pipeline.OK(project), false)
	}
}

// deleteProject removes a project and everything it owns
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		env := h.pipe.Delete(r.Context(), projectID)
		h.responder.WriteEnvelope(w, env, false)
	}
}
