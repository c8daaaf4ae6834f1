package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type TaskHandler struct {
	taskService contract.TaskService
	validate    *validator.Validate
}

func New(taskService contract.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

type createTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	DueTime     *string `json:"due_time"`
}

type updateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	DueTime     *string `json:"due_time"`
	Completed   *bool   `json:"completed"`
	Notified60  *bool   `json:"notified_60"`
	Notified5   *bool   `json:"notified_5"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.Create(r.Context(), entity.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueTime:     req.DueTime,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	if err := h.validate.Struct(filter); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: validationMessage(err)})
		return
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.Update(r.Context(), id, entity.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueTime:     req.DueTime,
		Completed:   req.Completed,
		Notified60:  req.Notified60,
		Notified5:   req.Notified5,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}

func (h *TaskHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body"})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: validationMessage(err)})
		return false
	}

	return true
}

func (h *TaskHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Detail: "Task not found"})
	case errors.Is(err, domain.ErrInvalidTask):
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		log.WithError(err).WithField("path", r.URL.Path).Error("task request failed")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}

func pathTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid task id"})
		return 0, false
	}
	return id, true
}

func parseTaskFilter(r *http.Request) (entity.TaskFilter, error) {
	q := r.URL.Query()
	filter := entity.TaskFilter{
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Limit:  domain.DefaultTaskLimit,
	}

	var err error
	if filter.Completed, err = optionalBool(q.Get("completed")); err != nil {
		return filter, fmt.Errorf("completed: %w", err)
	}
	if filter.HasDue, err = optionalBool(q.Get("has_due")); err != nil {
		return filter, fmt.Errorf("has_due: %w", err)
	}
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			return filter, fmt.Errorf("limit: must be an integer")
		}
	}
	if v := q.Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			return filter, fmt.Errorf("offset: must be an integer")
		}
	}

	return filter, nil
}

func optionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.New("must be a boolean")
	}
	return &b, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}
