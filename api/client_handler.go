package api

import (
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

type clientHandler struct {
	responder  Responder
	logger     zerolog.Logger
	clientRepo *database.ClientRepo
	registry   *cache.Registry
	pipe       *pipeline.Pipeline[models.Client]
}

func newClientHandler(clientRepo *database.ClientRepo, registry *cache.Registry) clientHandler {
	logger := log.With().Str("handlerName", "clientHandler").Logger()

	return clientHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		clientRepo: clientRepo,
		registry:   registry,
		pipe: pipeline.New(pipeline.Config[models.Client]{
			Entity:   "client",
			Create:   validate.ClientCreate(),
			Update:   validate.ClientUpdate(),
			Store:    clientRepo,
			Cache:    registry,
			ListPath: "/clients",
			DetailPath: func(id uuid.UUID) string {
				return "/client/" + id.String()
			},
			Logger: logger,
		}),
	}
}

// ClientCollection represents multiple clients
type ClientCollection struct {
	Clients []*models.Client `json:"clients"`
	Total   int              `json:"total,omitempty"`
}

// getAllClients retrieves all clients
// @Summary Get all clients
// @Description Retrieves all clients from the database
// @Tags Clients
// @Produce json
// @Success 200 {object} ClientCollection "List of clients"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching clients"
// @Router /clients [get]
func (h clientHandler) getAllClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload, ok := h.registry.Get("/clients"); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		clients, err := h.clientRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find clients", "clients", err))
			return
		}

		response := ClientCollection{Clients: clients, Total: len(clients)}
		h.writeAndCache(w, "/clients", response)
	}
}

// getClient retrieves a specific client by ID
// @Summary Get client
// @Description Retrieves detailed information about a specific client by ID
// @Tags Clients
// @Produce json
// @Param clientID path string true "Client ID" format(uuid)
// @Success 200 {object} models.Client "Client details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid clientID"
// @Failure 404 {object} ErrorResponse "Not Found - Client not found"
// @Router /client/{clientID} [get]
func (h clientHandler) getClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid clientID"))
			return
		}

		client, err := h.clientRepo.FindByID(r.Context(), clientID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find client", "client", err))
			return
		}
		if client == nil {
			h.responder.WriteError(w, errs.NewNotFound("client"))
			return
		}

		h.responder.WriteJSON(w, client)
	}
}

// createClient runs the validated-mutation pipeline for a new client
// @Summary Create client
// @Description Creates a new client in the database
// @Tags Clients
// @Accept json
// @Produce json
// @Success 201 {object} pipeline.Envelope "Created client"
// @Failure 400 {object} pipeline.Envelope "Validation failure with field errors"
// @Router /client [post]
func (h clientHandler) createClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.Create(r.Context(), input)
		h.responder.WriteEnvelope(w, env, true)
	}
}

// updateClient applies a partial validated payload over an existing client
// @Summary Update client
// @Tags Clients
// @Accept json
// @Produce json
// @Param clientID path string true "Client ID" format(uuid)
// @Router /client/{clientID} [put]
func (h clientHandler) updateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid clientID"))
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		env := h.pipe.Update(r.Context(), clientID, input)
		h.responder.WriteEnvelope(w, env, false)
	}
}

// deleteClient removes a client after an existence check
// @Summary Delete client
// @Tags Clients
// @Produce json
// @Param clientID path string true "Client ID" format(uuid)
// @Router /client/{clientID} [delete]
func (h clientHandler) deleteClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid clientID"))
			return
		}

		env := h.pipe.Delete(r.Context(), clientID)
		h.responder.WriteEnvelope(w, env, false)
	}
}

func (h clientHandler) writeAndCache(w http.ResponseWriter, path string, response any) {
	payload, err := marshalForCache(response)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	h.registry.Put(path, payload)
	h.responder.WriteRaw(w, payload)
}
