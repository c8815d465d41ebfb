package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type WorkoutPlansResponse struct {
	WorkoutPlans []*entity.WorkoutPlan `json:"workoutPlans"`
	Count        int                   `json:"count"`
}

// CreateWorkoutPlan godoc
// @Summary Create a workout plan
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.CreateWorkoutPlanRequest true "plan"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /workouts [post]
func (s *Server) CreateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create workout plan")
	if !ok {
		return
	}
	var req service.CreateWorkoutPlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "create workout plan", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	plan, err := s.planService.Create(ctx, uid, &req)
	if err != nil {
		s.writeServiceError(w, logger, "create workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, "Workout plan created successfully", map[string]any{"workoutPlan": plan})
	logger.Info("workout plan created", slog.String("plan_id", plan.ID.String()))
}

// ListWorkoutPlans godoc
// @Summary Own workout plans, newest first
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httputil.Envelope
// @Router /workouts [get]
func (s *Server) ListWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "list workout plans")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	plans, err := s.planService.List(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "list workout plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", WorkoutPlansResponse{
		WorkoutPlans: plans,
		Count:        len(plans),
	})
}

// GetWorkoutPlan godoc
// @Summary Workout plan by id
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "plan id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /workouts/{id} [get]
func (s *Server) GetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get workout plan")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("get workout plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgPlanNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	plan, err := s.planService.Get(ctx, uid, id)
	if err != nil {
		s.writeServiceError(w, logger, "get workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", map[string]any{"workoutPlan": plan})
}

// UpdateWorkoutPlan godoc
// @Summary Partially update a workout plan
// @Description A supplied exercise list replaces the stored one.
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "plan id"
// @Param body body service.UpdateWorkoutPlanRequest true "patch"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /workouts/{id} [put]
func (s *Server) UpdateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update workout plan")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("update workout plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgPlanNotFound)
		return
	}
	var req service.UpdateWorkoutPlanRequest
	if err = decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "update workout plan", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	plan, err := s.planService.Update(ctx, uid, id, &req)
	if err != nil {
		s.writeServiceError(w, logger, "update workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Workout plan updated successfully", map[string]any{"workoutPlan": plan})
	logger.Info("workout plan updated", slog.String("plan_id", id.String()))
}

// DeleteWorkoutPlan godoc
// @Summary Delete a workout plan with its scheduled workouts
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "plan id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /workouts/{id} [delete]
func (s *Server) DeleteWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "delete workout plan")
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("delete workout plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgPlanNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	if err = s.planService.Delete(ctx, uid, id); err != nil {
		s.writeServiceError(w, logger, "delete workout plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Workout plan deleted successfully", nil)
	logger.Info("workout plan deleted", slog.String("plan_id", id.String()))
}
