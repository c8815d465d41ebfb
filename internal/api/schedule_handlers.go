package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type SchedulesResponse struct {
	ScheduledWorkoutPlans []*entity.ScheduledWorkout `json:"scheduledWorkoutPlans"`
	Count                 int                        `json:"count"`
}

// CreateSchedule godoc
// @Summary Schedule a workout plan
// @Tags schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.CreateScheduleRequest true "schedule"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /schedules [post]
func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create schedule")
	if !ok {
		return
	}
	var req service.CreateScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "create schedule", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	sw, err := s.scheduleService.Create(ctx, uid, &req)
	if err != nil {
		s.writeServiceError(w, logger, "create schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, "Workout scheduled successfully", map[string]any{"scheduledWorkout": sw})
	logger.Info("workout scheduled", slog.String("schedule_id", sw.ID.String()))
}

// ListSchedules godoc
// @Summary Own scheduled workouts ordered by date
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param status query string false "PENDING, COMPLETED, SKIPPED or CANCELLED"
// @Param startDate query string false "inclusive lower bound, ISO 8601"
// @Param endDate query string false "inclusive upper bound, ISO 8601"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /schedules [get]
func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "list schedules")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	list, err := s.scheduleService.List(ctx, uid, &service.ScheduleListRequest{
		Status:    q.Get("status"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	})
	if err != nil {
		s.writeQueryError(w, logger, "list schedules", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", SchedulesResponse{
		ScheduledWorkoutPlans: list,
		Count:                 len(list),
	})
}

// GetSchedule godoc
// @Summary Scheduled workout with the plan's exercises
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "scheduled workout id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /schedules/{id} [get]
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get schedule")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("get schedule error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgScheduleNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	sw, err := s.scheduleService.Get(ctx, uid, id)
	if err != nil {
		s.writeServiceError(w, logger, "get schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", map[string]any{"scheduledWorkoutPlan": sw})
}

// UpdateSchedule godoc
// @Summary Reschedule or change status
// @Tags schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "scheduled workout id"
// @Param body body service.UpdateScheduleRequest true "patch"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /schedules/{id} [put]
func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update schedule")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("update schedule error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgScheduleNotFound)
		return
	}
	var req service.UpdateScheduleRequest
	if err = decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "update schedule", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	sw, err := s.scheduleService.Update(ctx, uid, id, &req)
	if err != nil {
		s.writeServiceError(w, logger, "update schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Scheduled workout updated successfully", map[string]any{"scheduledWorkout": sw})
	logger.Info("scheduled workout updated", slog.String("schedule_id", id.String()))
}

// DeleteSchedule godoc
// @Summary Delete a scheduled workout
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "scheduled workout id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /schedules/{id} [delete]
func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "delete schedule")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("delete schedule error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgScheduleNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	if err = s.scheduleService.Delete(ctx, uid, id); err != nil {
		s.writeServiceError(w, logger, "delete schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Scheduled workout deleted successfully", nil)
	logger.Info("scheduled workout deleted", slog.String("schedule_id", id.String()))
}
