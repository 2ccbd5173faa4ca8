package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/internal/service/comment"
)

type commentService interface {
	ListCommentsByToy(ctx context.Context, toyID int64) ([]domain.Comment, error)
	GetComment(ctx context.Context, id int64) (*domain.Comment, error)
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// CommentHandler serves toy review endpoints.
type CommentHandler struct {
	responder
	svc commentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger, verbose bool) *CommentHandler {
	return &CommentHandler{
		responder: responder{log: logger.With("handler", "comment"), verbose: verbose},
		svc:       svc,
	}
}

const msgInvalidCommentID = "Invalid comment ID"

type commentRequest struct {
	Author  *string  `json:"author"`
	Content *string  `json:"content"`
	Rating  *float64 `json:"rating"`
}

// ListByToy handles GET /toys/{toyId}/comments, newest first.
func (h *CommentHandler) ListByToy(w http.ResponseWriter, r *http.Request) {
	toyID, ok := pathID(r, "toyId")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyID)
		return
	}

	comments, err := h.svc.ListCommentsByToy(r.Context(), toyID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]commentDTO, len(comments))
	for i, c := range comments {
		out[i] = toCommentDTO(c)
	}
	writeSuccess(w, http.StatusOK, "Comments retrieved successfully", out)
}

// Get handles GET /comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidCommentID)
		return
	}

	c, err := h.svc.GetComment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment retrieved successfully", toCommentDTO(*c))
}

// Create handles POST /toys/{toyId}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	toyID, ok := pathID(r, "toyId")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyID)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), comment.CreateCommentInput{
		ToyID:   toyID,
		Author:  deref(req.Author),
		Content: deref(req.Content),
		Rating:  req.Rating,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Comment created successfully", toCommentDTO(*c))
}

// Update handles PUT /comments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidCommentID)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), comment.UpdateCommentInput{
		ID:      id,
		Author:  req.Author,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment updated successfully", toCommentDTO(*c))
}

// Delete handles DELETE /comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidCommentID)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment deleted successfully", nil)
}
