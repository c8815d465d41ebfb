package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

const (
	msgUserExists          = "User with this email already exists"
	msgWrongCredentials    = "Invalid email or password"
	msgExerciseNotFound    = "Exercise not found"
	msgPlanNotFound        = "Workout plan not found"
	msgScheduleNotFound    = "Scheduled workout not found"
	msgWorkoutLogNotFound  = "Workout log not found"
	msgUserNotFoundPlainly = "User not found"
)

type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.SignupRequest true "credentials"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /auth/signup [post]
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "signup", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Warn("signup error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, msgUserExists)
			return
		}
		s.writeServiceError(w, logger, "signup", err)
		return
	}
	s.metrics.CounterSignups.Inc()
	httputil.WriteJSONResponse(w, http.StatusCreated, "User registered successfully", AuthResponse{User: user})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, logger, "login", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Warn("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, msgWrongCredentials)
			return
		}
		s.writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteInternalErrorResponse(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "Login successful", AuthResponse{User: user, Token: token})
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /auth/me [get]
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("me error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", AuthResponse{User: user})
}

// writeServiceError maps service failures onto the response envelope. Unexpected errors are logged and masked.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if verr, ok := errorvalues.AsValidationError(err); ok {
		logger.Warn(op+" error: validation failed", slog.String("error", verr.Error()))
		httputil.WriteValidationErrorResponse(w, verr)
		return
	}
	var message string
	switch {
	case errors.Is(err, errorvalues.ErrExerciseNotFound):
		message = msgExerciseNotFound
	case errors.Is(err, errorvalues.ErrWorkoutPlanNotFound):
		message = msgPlanNotFound
	case errors.Is(err, errorvalues.ErrScheduledWorkoutNotFound):
		message = msgScheduleNotFound
	case errors.Is(err, errorvalues.ErrWorkoutLogNotFound):
		message = msgWorkoutLogNotFound
	case errors.Is(err, errorvalues.ErrUserNotFound):
		message = msgUserNotFoundPlainly
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteInternalErrorResponse(w)
		return
	}
	logger.Warn(op+" error: not found", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusNotFound, message)
}

// writeQueryError is writeServiceError for requests built from the query string.
func (s *Server) writeQueryError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if verr, ok := errorvalues.AsValidationError(err); ok {
		logger.Warn(op+" error: invalid query", slog.String("error", verr.Error()))
		httputil.WriteValidationErrorResponse(w, errorvalues.NewValidationError(errorvalues.MsgInvalidRequestQuery, verr.Errors...))
		return
	}
	s.writeServiceError(w, logger, op, err)
}

// decodeBody reports wrong JSON types as *errorvalues.ValidationError. Other failures are malformed bodies.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("reading body error: " + err.Error())
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}
	if !sonic.Valid(body) {
		return errors.New("malformed json body")
	}
	if err = sonic.Unmarshal(body, dst); err != nil {
		if verr := service.CheckJSONTypes(body, dst); verr != nil {
			return verr
		}
		return err
	}
	return nil
}

func writeBodyError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if verr, ok := errorvalues.AsValidationError(err); ok {
		logger.Warn(op+" error: wrong field types", slog.String("error", verr.Error()))
		httputil.WriteValidationErrorResponse(w, verr)
		return
	}
	logger.Warn(op+" error: invalid request body", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, msgInvalidRequestBody)
}

func parseIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// requireUID writes 401 when the auth middleware did not run.
func requireUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, msgInvalidToken)
		return uuid.UUID{}, false
	}
	return uid, true
}
