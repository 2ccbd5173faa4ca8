package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/internal/service/toytype"
)

type toyTypeService interface {
	ListToyTypes(ctx context.Context) ([]domain.ToyType, error)
	GetToyType(ctx context.Context, id int64) (*domain.ToyType, error)
	CreateToyType(ctx context.Context, input toytype.CreateToyTypeInput) (*domain.ToyType, error)
	UpdateToyType(ctx context.Context, input toytype.UpdateToyTypeInput) (*domain.ToyType, error)
	DeleteToyType(ctx context.Context, id int64) error
}

// ToyTypeHandler serves /toy-types endpoints.
type ToyTypeHandler struct {
	responder
	svc toyTypeService
}

// NewToyTypeHandler creates a ToyTypeHandler.
func NewToyTypeHandler(svc toyTypeService, logger *slog.Logger, verbose bool) *ToyTypeHandler {
	return &ToyTypeHandler{
		responder: responder{log: logger.With("handler", "toy_type"), verbose: verbose},
		svc:       svc,
	}
}

const msgInvalidToyTypeID = "Invalid toy type ID"

type toyTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// List handles GET /toy-types.
func (h *ToyTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListToyTypes(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]toyTypeDTO, len(types))
	for i, t := range types {
		out[i] = toToyTypeDTO(t)
	}
	writeSuccess(w, http.StatusOK, "Toy types retrieved successfully", out)
}

// Get handles GET /toy-types/{id}.
func (h *ToyTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyTypeID)
		return
	}

	t, err := h.svc.GetToyType(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy type retrieved successfully", toToyTypeDTO(*t))
}

// Create handles POST /toy-types.
func (h *ToyTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toyTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	t, err := h.svc.CreateToyType(r.Context(), toytype.CreateToyTypeInput{
		Name:        deref(req.Name),
		Description: deref(req.Description),
		Icon:        req.Icon,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Toy type created successfully", toToyTypeDTO(*t))
}

// Update handles PUT /toy-types/{id}.
func (h *ToyTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyTypeID)
		return
	}

	var req toyTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	t, err := h.svc.UpdateToyType(r.Context(), toytype.UpdateToyTypeInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy type updated successfully", toToyTypeDTO(*t))
}

// Delete handles DELETE /toy-types/{id}.
func (h *ToyTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyTypeID)
		return
	}

	if err := h.svc.DeleteToyType(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy type deleted successfully", nil)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
