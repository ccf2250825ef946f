package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskdeck-app/taskdeck/backend/errs"
	"github.com/taskdeck-app/taskdeck/backend/pipeline"
	"github.com/taskdeck-app/taskdeck/backend/services"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *services.AuthService
}

func newAuthHandler(auth *services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

// register creates an account and returns the new user
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, fieldErrs := validate.UserRegister().Validate(input)
		if fieldErrs != nil {
			h.responder.WriteEnvelope(w, pipeline.Invalid(fieldErrs), false)
			return
		}

		surname, _ := fields["surname"].(string)
		user, err := h.auth.Register(r.Context(),
			fields["name"].(string), surname, fields["email"].(string), fields["password"].(string))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, user)
	}
}

// login verifies credentials and returns a bearer token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		email, _ := input["email"].(string)
		password, _ := input["password"].(string)
		if email == "" || password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		token, user, err := h.auth.Login(r.Context(), email, password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"user":  user,
		})
	}
}

// forgotPassword creates a reset code and mails it. Delivery failure does not
// fail the request, and unknown emails report success.
func (h authHandler) forgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, fieldErrs := validate.PasswordResetRequest().Validate(input)
		if fieldErrs != nil {
			h.responder.WriteEnvelope(w, pipeline.Invalid(fieldErrs), false)
			return
		}

		if err := h.auth.RequestPasswordReset(r.Context(), fields["email"].(string)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "if the address has an account, a reset code was sent",
		})
	}
}

// resetPassword consumes a reset code and installs a new password
func (h authHandler) resetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, fieldErrs := validate.PasswordReset().Validate(input)
		if fieldErrs != nil {
			h.responder.WriteEnvelope(w, pipeline.Invalid(fieldErrs), false)
			return
		}

		if err := h.auth.ResetPassword(r.Context(), fields["code"].(string), fields["password"].(string)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "password updated",
		})
	}
}
