package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/clinic-sync/internal/app"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/service"
	"github.com/mvoronin/clinic-sync/internal/utils"
	"github.com/mvoronin/clinic-sync/internal/validators"
	"github.com/mvoronin/clinic-sync/models"
)

// pull serves GET /api/{collection}/?since=…
//
// The since parameter is optional: a first-time client omits it and receives
// the full collection. The response's server_time is the checkpoint the
// client must present on its next pull.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	collection := models.Collection(chi.URLParam(r, "collection"))

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Err(err).Str("since", raw).Msg("unparseable since parameter")
			http.Error(w, app.MsgInvalidSinceParameter, http.StatusBadRequest)
			return
		}
		since = parsed
	}

	resp, err := h.services.RecordService.Pull(ctx, userID, collection, since)
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// createRecord serves POST /api/{collection}/. A replayed create (same
// local_id) answers 200 with the already-stored record instead of 201.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	collection := models.Collection(chi.URLParam(r, "collection"))

	var req models.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, created, err := h.services.RecordService.Create(ctx, userID, collection, req)
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, resp, status)
}

// updateRecord serves PUT /api/{collection}/{remoteID}.
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	collection := models.Collection(chi.URLParam(r, "collection"))
	remoteID := chi.URLParam(r, "remoteID")

	var req models.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.RecordService.Update(ctx, userID, collection, remoteID, req)
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// deleteRecord serves DELETE /api/{collection}/{remoteID}. Deletion is a
// soft delete guarded by the same base-version check as updates, so a stale
// client gets a 409 with the current server copy rather than losing an edit
// it has never seen.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	collection := models.Collection(chi.URLParam(r, "collection"))
	remoteID := chi.URLParam(r, "remoteID")

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.Delete(ctx, userID, collection, remoteID, req.BaseVersion); err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeRecordError maps record-service failures onto the wire protocol.
// Version conflicts and validation rejections carry structured bodies so
// the client can resolve them without another round trip; everything else
// degrades to a plain-text status.
func (h *Handler) writeRecordError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var conflictErr *service.VersionConflictError
	if errors.As(err, &conflictErr) {
		log.Warn().Int64("current_version", conflictErr.Current.Version).Msg("version conflict")
		utils.WriteJSON(w, models.ConflictResponse{
			CurrentVersion: conflictErr.Current.Version,
			CurrentRecord:  conflictErr.Current,
		}, http.StatusConflict)
		return
	}

	var validationErr *validators.ValidationErrors
	if errors.As(err, &validationErr) {
		log.Warn().Strs("errors", validationErr.Messages).Msg("validation rejected")
		utils.WriteJSON(w, models.ValidationResponse{Errors: validationErr.Messages}, http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("record operation failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Msg("record operation rejected")
	http.Error(w, err.Error(), status)
}
