package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dailygrid/dailygrid/internal/api/request"
	"github.com/dailygrid/dailygrid/internal/api/response"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/ingest"
)

// IngestHandler handles message ingestion and catch-up endpoints
type IngestHandler struct {
	controller *ingest.Controller
	directory  model.MemberDirectory
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(controller *ingest.Controller, directory model.MemberDirectory) *IngestHandler {
	return &IngestHandler{
		controller: controller,
		directory:  directory,
	}
}

// Message handles POST /api/v1/messages
func (h *IngestHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req request.IngestMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Content == "" {
		WriteError(w, NewInvalidRequestError("content is required"))
		return
	}
	if req.CreatedAt.IsZero() {
		WriteError(w, NewInvalidRequestError("created_at is required"))
		return
	}

	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		AuthorID:  model.PlayerID(req.AuthorID),
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
	}

	count, err := h.controller.IngestMessage(r.Context(), msg, h.directory)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ingest{ResultsIngested: count})
}

// Catchup handles POST /api/v1/catchup
func (h *IngestHandler) Catchup(w http.ResponseWriter, r *http.Request) {
	var req request.Catchup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var history ingest.HistoryProvider
	switch {
	case req.TranscriptPath != "" && len(req.Messages) > 0:
		WriteError(w, NewInvalidRequestError("set either transcript_path or messages, not both"))
		return
	case req.TranscriptPath != "":
		history = ingest.NewTranscriptProvider(req.TranscriptPath)
	case len(req.Messages) > 0:
		msgs := make([]model.ChatMessage, 0, len(req.Messages))
		for _, m := range req.Messages {
			msgs = append(msgs, model.ChatMessage{
				ID:        uuid.NewString(),
				AuthorID:  model.PlayerID(m.AuthorID),
				Content:   m.Content,
				CreatedAt: m.CreatedAt,
			})
		}
		history = &ingest.SliceProvider{Messages: msgs}
	default:
		WriteError(w, NewInvalidRequestError("transcript_path or messages is required"))
		return
	}

	report, err := h.controller.Catchup(r.Context(), history, h.directory)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, report)
}
