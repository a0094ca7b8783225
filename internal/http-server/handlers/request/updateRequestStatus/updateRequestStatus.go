package updateRequestStatus

import (
	"errors"
	"fmt"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type StatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending in_review completed rejected"`
	AdminNotes string `json:"admin_notes"`
}

type StatusResponse struct {
	response.Response
	Request *models.SongRequest `json:"request"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestUpdater
type RequestUpdater interface {
	UpdateSongRequestStatus(id, status, adminNotes string) (*models.SongRequest, error)
	NotifyUser(userID, title, message string) error
}

func New(log *slog.Logger, requests RequestUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.updateRequestStatus.New"

		log = log.With(slog.String("op", op))

		requestID := chi.URLParam(r, "id")
		if requestID == "" {
			log.Error("request id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("request id is required"))
			return
		}

		log = log.With(slog.String("request_id", requestID))

		var req StatusRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		updated, err := requests.UpdateSongRequestStatus(requestID, req.Status, req.AdminNotes)
		if err != nil {
			log.Error("failed to update song request", sl.Err(err))

			if errors.Is(err, storage.ErrRequestNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("song request not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update song request"))
			return
		}

		if req.Status == models.RequestStatusCompleted {
			message := fmt.Sprintf("Your request %q has been completed. Check the archive!", updated.Title)
			if err := requests.NotifyUser(updated.UserID, "Song Request Completed", message); err != nil {
				// Status is already updated; the notification is best effort.
				log.Error("failed to notify requester", sl.Err(err))
			}
		}

		log.Info("song request updated", slog.String("status", req.Status))

		render.JSON(w, r, StatusResponse{
			Response: response.OK(),
			Request:  updated,
		})
	}
}
