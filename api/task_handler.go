package api

import (
	"context"
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

type taskHandler struct {
	responder     Responder
	logger        zerolog.Logger
	taskRepo      *database.TaskRepo
	subTaskRepo   *database.SubTaskRepo
	timeEntryRepo *database.TimeEntryRepo
	registry      *cache.Registry
	pipe          *pipeline.Pipeline[models.Task]
	subTaskPipe   *pipeline.Pipeline[models.SubTask]
	tagPipe       *pipeline.Pipeline[models.Tag]
	timeEntryPipe *pipeline.Pipeline[models.TimeEntry]
}

func newTaskHandler(taskRepo *database.TaskRepo, subTaskRepo *database.SubTaskRepo, tagRepo *database.TagRepo, timeEntryRepo *database.TimeEntryRepo, registry *cache.Registry) taskHandler {
	logger := log.With().Str("handlerName", "taskHandler").Logger()

	taskDetail := func(id uuid.UUID) string {
		return "/task/" + id.String()
	}

	h := taskHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		taskRepo:      taskRepo,
		subTaskRepo:   subTaskRepo,
		timeEntryRepo: timeEntryRepo,
		registry:      registry,
	}

	h.pipe = pipeline.New(pipeline.Config[models.Task]{
		Entity:     "task",
		Create:     validate.TaskCreate(),
		Update:     validate.TaskUpdate(),
		Store:      taskRepo,
		Cache:      registry,
		ListPath:   "/tasks",
		DetailPath: taskDetail,
		// The task embeds in the owning project's cached detail
		ParentPaths: func(_ context.Context, task *models.Task) []string {
			return []string{"/project/" + task.ProjectID.String()}
		},
		Logger: logger,
	})
	h.subTaskPipe = pipeline.New(pipeline.Config[models.SubTask]{
		Entity:   "subtask",
		Create:   validate.SubTaskCreate(),
		Update:   validate.SubTaskCreate(),
		Store:    subTaskRepo,
		Cache:    registry,
		ListPath: "/tasks",
		ParentPaths: func(ctx context.Context, subTask *models.SubTask) []string {
			return h.taskPaths(ctx, subTask.TaskID)
		},
		Logger: logger,
	})
	h.tagPipe = pipeline.New(pipeline.Config[models.Tag]{
		Entity:   "tag",
		Create:   validate.TagCreate(),
		Update:   validate.TagCreate(),
		Store:    tagRepo,
		Cache:    registry,
		ListPath: "/tasks",
		ParentPaths: func(ctx context.Context, tag *models.Tag) []string {
			return h.taskPaths(ctx, tag.TaskID)
		},
		Logger: logger,
	})
	h.timeEntryPipe = pipeline.New(pipeline.Config[models.TimeEntry]{
		Entity:   "time entry",
		Create:   validate.TimeEntryCreate(),
		Update:   validate.TimeEntryCreate(),
		Store:    timeEntryRepo,
		Cache:    registry,
		ListPath: "/tasks",
		ParentPaths: func(ctx context.Context, entry *models.TimeEntry) []string {
			return h.taskPaths(ctx, entry.TaskID)
		},
		Logger: logger,
	})

	return h
}

// taskPaths lists the cached renderings a task's children appear in: the
// task's own detail and the owning project's detail.
func (h taskHandler) taskPaths(ctx context.Context, taskID uuid.UUID) []string {
	paths := []string{"/task/" + taskID.String()}
	if task, err := h.taskRepo.FindByID(ctx, taskID); err == nil && task != nil {
		paths = append(paths, "/project/"+task.ProjectID.String())
	}
	return paths
}

// TaskCollection represents multiple tasks
type TaskCollection struct {
	Tasks []*models.Task `json:"tasks"`
	Total int            `json:"total,omitempty"`
}

// getAllTasks retrieves all tasks
func (h taskHandler) getAllTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload, ok := h.registry.Get("/tasks"); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		tasks, err := h.taskRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}

		response := TaskCollection{Tasks: tasks, Total: len(tasks)}
		payload, merr := marshalForCache(response)
		if merr != nil {
			h.responder.WriteError(w, merr)
			return
		}
		h.registry.Put("/tasks", payload)
		h.responder.WriteRaw(w, payload)
	}
}

// getTask retrieves a task with its owned relationships
func (h taskHandler) getTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		detailPath := "/task/" + taskID.String()
		if payload, ok := h.registry.Get(detailPath); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		task, err := h.taskRepo.FindDetail(r.Context(), taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("task"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find task", "task", err))
			return
		}

		payload, merr := marshalForCache(task)
		if merr != nil {
			h.responder.WriteError(w, merr)
			return
		}
		h.registry.Put(detailPath, payload)
		h.responder.WriteRaw(w, payload)
	}
}

// getProjectTasks lists a project's tasks in creation order
func (h taskHandler) getProjectTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		tasks, err := h.taskRepo.FindAllByProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}
		h.responder.WriteJSON(w, TaskCollection{Tasks: tasks, Total: len(tasks)})
	}
}

// createTask creates a task under a project, owned by the acting user
func (h taskHandler) createTask() http.HandlerFunc {
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

// updateTask applies a partial validated payload over an existing task
func (h taskHandler) updateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.Update(r.Context(), taskID, input)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// toggleTaskStatus runs the narrow status-only schema
func (h taskHandler) toggleTaskStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.UpdateWith(r.Context(), validate.TaskStatusToggle(), taskID, input)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// deleteTask removes a task and everything it owns
func (h taskHandler) deleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		env := h.pipe.Delete(r.Context(), taskID)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// createSubTask adds a checklist item under a task
func (h taskHandler) createSubTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		input["taskId"] = taskID.String()

		env := h.subTaskPipe.Create(r.Context(), input)
		h.responder.WriteEnvelope(w, env, true)
	}
}

// toggleSubTask flips a subtask's completion flag
func (h taskHandler) toggleSubTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subTaskID, err := uuid.Parse(chi.URLParam(r, "subTaskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid subTaskID"))
			return
		}

		subTask, err := h.subTaskRepo.FindByID(r.Context(), subTaskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find subtask", "subtask", err))
			return
		}
		if subTask == nil {
			h.responder.WriteEnvelope(w, pipeline.NotFound("subtask"), false)
			return
		}

		if err := h.subTaskRepo.SetCompleted(r.Context(), subTaskID, !subTask.Completed); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update subtask", "subtask", err))
			return
		}
		for _, path := range h.taskPaths(r.Context(), subTask.TaskID) {
			h.registry.Invalidate(path)
		}

		updated, err := h.subTaskRepo.FindByID(r.Context(), subTaskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find subtask", "subtask", err))
			return
		}
		h.responder.WriteEnvelope(w, pipeline.OK(updated), false)
	}
}

// createTag adds a label to a task
func (h taskHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		input["taskId"] = taskID.String()

		env := h.tagPipe.Create(r.Context(), input)
		h.responder.WriteEnvelope(w, env, true)
	}
}

// createTimeEntry records time spent on a task by the acting user
func (h taskHandler) createTimeEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		input["taskId"] = taskID.String()
		input["userId"] = userID.String()

		env := h.timeEntryPipe.Create(r.Context(), input)
		h.responder.WriteEnvelope(w, env, true)
	}
}

// TimeEntryCollection represents multiple time entries
type TimeEntryCollection struct {
	TimeEntries []*models.TimeEntry `json:"time_entries"`
	Total       int                 `json:"total,omitempty"`
}

// getTimeEntries lists a task's time entries, oldest first
func (h taskHandler) getTimeEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		entries, err := h.timeEntryRepo.FindAllByTask(r.Context(), taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find time entries", "time entries", err))
			return
		}
		h.responder.WriteJSON(w, TimeEntryCollection{TimeEntries: entries, Total: len(entries)})
	}
}
