package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type WorkoutLogsResponse struct {
	WorkoutLogs []*entity.WorkoutLog `json:"workoutLogs"`
	Count       int                  `json:"count"`
}

// CreateWorkoutLog godoc
// @Summary Log a performed workout
// @Description Exactly one of scheduledWorkoutId or workoutPlanId. A scheduled workout becomes COMPLETED.
// @Tags logs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.CreateWorkoutLogRequest true "log"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /logs [post]
func (s *Server) CreateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create workout log")
	if !ok {
		return
	}
	var req service.CreateWorkoutLogRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "create workout log", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	log, err := s.logService.Create(ctx, uid, &req)
	if err != nil {
		s.writeServiceError(w, logger, "create workout log", err)
		return
	}
	s.metrics.CounterWorkoutLogs.Inc()
	httputil.WriteJSONResponse(w, http.StatusCreated, "Workout log created successfully", map[string]any{"workoutLog": log})
	logger.Info("workout log created", slog.String("log_id", log.ID.String()))
}

// ListWorkoutLogs godoc
// @Summary Own workout logs, newest first
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "inclusive lower bound on completedAt"
// @Param endDate query string false "inclusive upper bound on completedAt"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /logs [get]
func (s *Server) ListWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "list workout logs")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	logs, err := s.logService.List(ctx, uid, &service.DateRangeRequest{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	})
	if err != nil {
		s.writeQueryError(w, logger, "list workout logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", WorkoutLogsResponse{
		WorkoutLogs: logs,
		Count:       len(logs),
	})
}

// GetWorkoutLog godoc
// @Summary Workout log by id
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param id path string true "log id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /logs/{id} [get]
func (s *Server) GetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get workout log")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("get workout log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgWorkoutLogNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	log, err := s.logService.Get(ctx, uid, id)
	if err != nil {
		s.writeServiceError(w, logger, "get workout log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", map[string]any{"workoutLog": log})
}

// UpdateWorkoutLog godoc
// @Summary Partially update a workout log
// @Tags logs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "log id"
// @Param body body service.UpdateWorkoutLogRequest true "patch"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /logs/{id} [put]
func (s *Server) UpdateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update workout log")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("update workout log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgWorkoutLogNotFound)
		return
	}
	var req service.UpdateWorkoutLogRequest
	if err = decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "update workout log", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	log, err := s.logService.Update(ctx, uid, id, &req)
	if err != nil {
		s.writeServiceError(w, logger, "update workout log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Workout log updated successfully", map[string]any{"workoutLog": log})
	logger.Info("workout log updated", slog.String("log_id", id.String()))
}

// DeleteWorkoutLog godoc
// @Summary Delete a workout log
// @Description The status of a completed scheduled workout is kept.
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param id path string true "log id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /logs/{id} [delete]
func (s *Server) DeleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "delete workout log")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("delete workout log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgWorkoutLogNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	if err = s.logService.Delete(ctx, uid, id); err != nil {
		s.writeServiceError(w, logger, "delete workout log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Workout log deleted successfully", nil)
	logger.Info("workout log deleted", slog.String("log_id", id.String()))
}
