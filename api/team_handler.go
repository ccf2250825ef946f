package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/pipeline"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	teamRepo  *database.TeamRepo
	userRepo  *database.UserRepo
}

func newTeamHandler(teamRepo *database.TeamRepo, userRepo *database.UserRepo) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		teamRepo:  teamRepo,
		userRepo:  userRepo,
	}
}

// TeamCollection represents multiple teams
type TeamCollection struct {
	Teams []*models.Team `json:"teams"`
	Total int            `json:"total,omitempty"`
}

// getAllTeams lists all teams with their members
func (h teamHandler) getAllTeams() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := h.teamRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find teams", "teams", err))
			return
		}

		h.responder.WriteJSON(w, TeamCollection{Teams: teams, Total: len(teams)})
	}
}

// createTeam creates an empty team
func (h teamHandler) createTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, fieldErrs := validate.TeamCreate().Validate(input)
		if fieldErrs != nil {
			h.responder.WriteEnvelope(w, pipeline.Invalid(fieldErrs), false)
			return
		}

		team := &models.Team{
			ID:   uuid.New(),
			Name: fields["name"].(string),
		}
		if err := h.teamRepo.Add(r.Context(), team); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create team", "team", err))
			return
		}

		h.responder.WriteEnvelope(w, pipeline.OK(team), true)
	}
}

// addTeamMember puts a user on a team
func (h teamHandler) addTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid teamID"))
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
		userID := fields["user_id"].(uuid.UUID)

		team, err := h.teamRepo.FindByID(r.Context(), teamID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team", "team", err))
			return
		}
		if team == nil {
			h.responder.WriteEnvelope(w, pipeline.NotFound("team"), false)
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteEnvelope(w, pipeline.NotFound("user"), false)
			return
		}

		if err := h.teamRepo.AddMember(r.Context(), teamID, userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update team", "team", err))
			return
		}

		updated, err := h.teamRepo.FindByID(r.Context(), teamID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team", "team", err))
			return
		}
		h.responder.WriteEnvelope(w, pipeline.OK(updated), false)
	}
}
