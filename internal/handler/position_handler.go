package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PositionHandler struct {
	positionService service.PositionService
	validator       *validator.Validate
	logger          *slog.Logger
}

func NewPositionHandler(positionService service.PositionService, logger *slog.Logger) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
		validator:       validator.New(),
		logger:          logger,
	}
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// Обрезаем пробелы до валидации, чтобы имя из одних пробелов не прошло min=1
	req.Name = strings.TrimSpace(req.Name)

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	position, err := h.positionService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toPositionResponse(position))
}

func (h *PositionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/positions/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	position, err := h.positionService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toPositionResponse(position))
}

func (h *PositionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positionService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.PositionResponse, len(positions))
	for i := range positions {
		resp[i] = toPositionResponse(&positions[i])
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *PositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/positions/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	var req dto.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	position, err := h.positionService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toPositionResponse(position))
}

func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/positions/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid position id", err.Error())
		return
	}

	if err := h.positionService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PositionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPositionNotFound):
		respondError(h.logger, w, http.StatusNotFound, "position not found", "")
	case errors.Is(err, domain.ErrPositionInUse):
		respondError(h.logger, w, http.StatusConflict, "position is referenced by employees", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

func toPositionResponse(position *domain.Position) dto.PositionResponse {
	return dto.PositionResponse{
		ID:   position.ID,
		Name: position.Name,
	}
}

// extractID извлекает идентификатор из пути вида /prefix/{id}
func extractID(r *http.Request, prefix string) (string, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.TrimSuffix(path, "/")

	if path == "" {
		return "", errors.New("id is required")
	}

	if _, err := uuid.Parse(path); err != nil {
		return "", err
	}

	return path, nil
}
