package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/internal/service/toy"
)

type toyService interface {
	ListToys(ctx context.Context) ([]domain.ToyWithType, error)
	ListToysByType(ctx context.Context, toyTypeID int64) ([]domain.ToyWithType, error)
	GetToy(ctx context.Context, id int64) (*domain.ToyWithType, error)
	CreateToy(ctx context.Context, input toy.CreateToyInput) (*domain.ToyWithType, error)
	UpdateToy(ctx context.Context, input toy.UpdateToyInput) (*domain.ToyWithType, error)
	DeleteToy(ctx context.Context, id int64) error
}

// ToyHandler serves /toys endpoints.
type ToyHandler struct {
	responder
	svc toyService
}

// NewToyHandler creates a ToyHandler.
func NewToyHandler(svc toyService, logger *slog.Logger, verbose bool) *ToyHandler {
	return &ToyHandler{
		responder: responder{log: logger.With("handler", "toy"), verbose: verbose},
		svc:       svc,
	}
}

const (
	msgInvalidToyID        = "Invalid toy ID"
	msgInvalidByTypeFilter = "Invalid toy type ID, must be a number greater than or equal to 0"
)

// toyRequest keeps numbers as float64 so that fractional ids reach
// validation instead of failing to decode.
type toyRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	DetailDescription *string  `json:"detailDescription"`
	Price             *float64 `json:"price"`
	ToyTypeID         *float64 `json:"toyTypeId"`
}

// List handles GET /toys.
func (h *ToyHandler) List(w http.ResponseWriter, r *http.Request) {
	toys, err := h.svc.ListToys(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toys retrieved successfully", toToyDTOs(toys))
}

// ListByType handles GET /toys/by-type/{toyTypeId}. A type id of 0 lists all toys.
func (h *ToyHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	toyTypeID, ok := pathID(r, "toyTypeId")
	if !ok || toyTypeID < 0 {
		writeFailure(w, http.StatusBadRequest, msgInvalidByTypeFilter)
		return
	}

	toys, err := h.svc.ListToysByType(r.Context(), toyTypeID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	msg := "Toys retrieved by type successfully"
	if toyTypeID == 0 {
		msg = "All toys retrieved successfully"
	}
	count := len(toys)
	writeJSON(w, http.StatusOK, successResponse{
		Success:   true,
		Message:   msg,
		Data:      toToyDTOs(toys),
		Count:     &count,
		ToyTypeID: &toyTypeID,
	})
}

// Get handles GET /toys/{id}.
func (h *ToyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyID)
		return
	}

	t, err := h.svc.GetToy(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy retrieved successfully", toToyDTO(*t))
}

// Create handles POST /toys.
func (h *ToyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	t, err := h.svc.CreateToy(r.Context(), toy.CreateToyInput{
		Name:              deref(req.Name),
		Description:       deref(req.Description),
		DetailDescription: deref(req.DetailDescription),
		Price:             req.Price,
		ToyTypeID:         req.ToyTypeID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Toy created successfully", toToyDTO(*t))
}

// Update handles PUT /toys/{id}.
func (h *ToyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyID)
		return
	}

	var req toyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	t, err := h.svc.UpdateToy(r.Context(), toy.UpdateToyInput{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		DetailDescription: req.DetailDescription,
		Price:             req.Price,
		ToyTypeID:         req.ToyTypeID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy updated successfully", toToyDTO(*t))
}

// Delete handles DELETE /toys/{id}.
func (h *ToyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeFailure(w, http.StatusBadRequest, msgInvalidToyID)
		return
	}

	if err := h.svc.DeleteToy(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Toy deleted successfully", nil)
}

func toToyDTOs(toys []domain.ToyWithType) []toyDTO {
	out := make([]toyDTO, len(toys))
	for i, t := range toys {
		out[i] = toToyDTO(t)
	}
	return out
}
