package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskdeck-app/taskdeck/backend/cache"
	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/pipeline"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

// Comment mutations run through the same envelope-returning pipeline as every
// other entity; nothing on these paths raises past the handler.
type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	pipe        *pipeline.Pipeline[models.Comment]
}

func newCommentHandler(commentRepo *database.CommentRepo, taskRepo *database.TaskRepo, registry *cache.Registry) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	// Comments render inside their parent's cached detail, so a mutation
	// invalidates the project or task the comment hangs off. A task comment
	// also appears in the owning project's rendering.
	parentPaths := func(ctx context.Context, comment *models.Comment) []string {
		var paths []string
		if comment.ProjectID != nil {
			paths = append(paths, "/project/"+comment.ProjectID.String())
		}
		if comment.TaskID != nil {
			paths = append(paths, "/task/"+comment.TaskID.String())
			if task, err := taskRepo.FindByID(ctx, *comment.TaskID); err == nil && task != nil {
				paths = append(paths, "/project/"+task.ProjectID.String())
			}
		}
		return paths
	}

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		pipe: pipeline.New(pipeline.Config[models.Comment]{
			Entity:      "comment",
			Create:      validate.CommentCreate(),
			Update:      validate.CommentEdit(),
			Store:       commentRepo,
			Cache:       registry,
			ParentPaths: parentPaths,
			Logger:      logger,
		}),
	}
}

// CommentCollection represents multiple comments
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total,omitempty"`
}

// getProjectComments lists a project's comments with authors, oldest first
func (h commentHandler) getProjectComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		comments, err := h.commentRepo.FindAllByProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}
		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// getTaskComments lists a task's comments with authors, oldest first
func (h commentHandler) getTaskComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		comments, err := h.commentRepo.FindAllByTask(r.Context(), taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}
		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// createProjectComment attaches a comment to a project
func (h commentHandler) createProjectComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}
		h.create(w, r, "projectId", projectID)
	}
}

// createTaskComment attaches a comment to a task
func (h commentHandler) createTaskComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}
		h.create(w, r, "taskId", taskID)
	}
}

func (h commentHandler) create(w http.ResponseWriter, r *http.Request, parentKey string, parentID uuid.UUID) {
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
	input[parentKey] = parentID.String()
	input["userId"] = userID.String()

	env := h.pipe.Create(r.Context(), input)
	h.responder.WriteEnvelope(w, env, true)
}

// updateComment edits a comment's content. The edit schema demands more
// content than create; short edits come back as field errors.
func (h commentHandler) updateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.Update(r.Context(), commentID, input)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// deleteComment removes a comment
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		env := h.pipe.Delete(r.Context(), commentID)
		h.responder.WriteEnvelope(w, env, false)
	}
}
