package api

import (
	"context"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type ExercisesResponse struct {
	Exercises []*entity.Exercise `json:"exercises"`
	Count     int                `json:"count"`
}

// ListExercises godoc
// @Summary Exercise catalog
// @Tags exercises
// @Security BearerAuth
// @Produce json
// @Param category query string false "STRENGTH, CARDIO, FLEXIBILITY or BALANCE"
// @Param muscleGroup query string false "CHEST, BACK, SHOULDERS, ARMS, LEGS, CORE, CARDIO or FULL_BODY"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /exercises [get]
func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	exercises, err := s.exerciseService.List(ctx, &service.ExerciseListRequest{
		Category:    q.Get("category"),
		MuscleGroup: q.Get("muscleGroup"),
	})
	if err != nil {
		s.writeQueryError(w, logger, "list exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", ExercisesResponse{
		Exercises: exercises,
		Count:     len(exercises),
	})
}

// GetExercise godoc
// @Summary Exercise by id
// @Tags exercises
// @Security BearerAuth
// @Produce json
// @Param id path string true "exercise id"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /exercises/{id} [get]
func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := parseIDParam(r)
	if err != nil {
		logger.Warn("get exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgExerciseNotFound)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	exercise, err := s.exerciseService.Get(ctx, id)
	if err != nil {
		s.writeServiceError(w, logger, "get exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", map[string]any{"exercise": exercise})
}
