package learn

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Learn godoc
// @Summary      Run a learning task
// @Description  Compiles the task prompt for the given text and returns the model answer.
// @Tags         learn
// @Accept       json
// @Produce      json
// @Param        request  body      LearnRequest  true  "Task and text"
// @Success      200      {object}  LearnResponse
// @Failure      400      {object}  config.ErrorResponse
// @Failure      401      {object}  config.ErrorResponse  "only when JWT auth is enabled"
// @Failure      500      {object}  config.ErrorResponse
// @Router       /api/learn [post]
func (h *Handler) Learn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LearnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for learn")
		config.Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.Task == "" || req.Text == "" {
		log.Warn("Learn request missing task or text")
		config.Error(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	message, err := h.service.Learn(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			config.Error(w, http.StatusBadRequest, msgMissingFields)
		case errors.Is(err, ErrUnsupportedTask):
			config.Error(w, http.StatusBadRequest, msgInvalidTask)
		default:
			log.WithError(err).WithField("task", req.Task).Error("Failed to get response from AI model")
			config.Error(w, http.StatusInternalServerError, msgUpstreamFailure)
		}
		return
	}

	config.JSON(w, http.StatusOK, LearnResponse{Message: message})
}

// ListTasks godoc
// @Summary  List supported learning tasks
// @Tags     learn
// @Produce  json
// @Success  200  {array}   TaskInfo
// @Failure  401  {object}  config.ErrorResponse  "only when JWT auth is enabled"
// @Router   /api/tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Tasks())
}
