package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/limbo/fittrack/docs"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/httputil"
)

const (
	apiPrefix              = "/api/v1"
	defaultAuthRatePerMin  = 20
	serviceTimeout         = time.Second * 10
	listTimeout            = time.Second * 15
	shutdownTimeout        = time.Second * 10
	msgRouteNotFound       = "Route not found"
	msgInvalidRequestBody  = "Invalid request body"
	msgMethodNotAllowed    = "Method not allowed"
	msgTooManyAuthAttempts = "Too many requests, please try again later"
)

type Server struct {
	mx         *chi.Mux
	httpServer *http.Server

	userService     service.UserServiceI
	exerciseService service.ExerciseServiceI
	planService     service.WorkoutPlanServiceI
	scheduleService service.ScheduleServiceI
	logService      service.WorkoutLogServiceI
	reportService   service.ReportServiceI
	jwtService      JWTServiceI

	metrics        *metrics.Manager
	gatherer       prometheus.Gatherer
	rateLimiter    RequestRateLimiter
	authRatePerMin int
	corsOrigins    []string
}

type ServicesList struct {
	UserService     service.UserServiceI
	ExerciseService service.ExerciseServiceI
	PlanService     service.WorkoutPlanServiceI
	ScheduleService service.ScheduleServiceI
	LogService      service.WorkoutLogServiceI
	ReportService   service.ReportServiceI
	JwtService      JWTServiceI

	// Optional. A private registry is used when nil
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
	// Optional. Auth routes are not limited when nil
	RateLimiter    RequestRateLimiter
	AuthRatePerMin int
	// Empty allows any origin
	CORSAllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		exerciseService: servicesOptions.ExerciseService,
		planService:     servicesOptions.PlanService,
		scheduleService: servicesOptions.ScheduleService,
		logService:      servicesOptions.LogService,
		reportService:   servicesOptions.ReportService,
		jwtService:      servicesOptions.JwtService,
		metrics:         servicesOptions.Metrics,
		gatherer:        servicesOptions.Gatherer,
		rateLimiter:     servicesOptions.RateLimiter,
		authRatePerMin:  servicesOptions.AuthRatePerMin,
		corsOrigins:     servicesOptions.CORSAllowedOrigins,
	}
	if s.metrics == nil {
		reg := prometheus.NewRegistry()
		s.metrics = metrics.NewManager("fittrack", "api", reg)
		s.gatherer = reg
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.authRatePerMin <= 0 {
		s.authRatePerMin = defaultAuthRatePerMin
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.PanicRecoveryMiddleware)
	s.mx.Use(s.RequestMetricsMiddleware)
	s.mx.Use(s.CORSMiddleware)

	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, msgRouteNotFound)
	})
	s.mx.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	s.mx.Get("/healthz", s.Health)
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route(apiPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(s.AuthRateLimitMiddleware)
				r.Post("/signup", s.Signup)
				r.Post("/login", s.Login)
			})
			r.With(s.AuthMiddleware, s.LoggerExtensionMiddleware).Get("/me", s.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/exercises", s.ListExercises)
			r.Get("/exercises/{id}", s.GetExercise)

			r.Route("/workouts", func(r chi.Router) {
				r.Post("/", s.CreateWorkoutPlan)
				r.Get("/", s.ListWorkoutPlans)
				r.Get("/{id}", s.GetWorkoutPlan)
				r.Put("/{id}", s.UpdateWorkoutPlan)
				r.Delete("/{id}", s.DeleteWorkoutPlan)
			})
			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", s.CreateSchedule)
				r.Get("/", s.ListSchedules)
				r.Get("/{id}", s.GetSchedule)
				r.Put("/{id}", s.UpdateSchedule)
				r.Delete("/{id}", s.DeleteSchedule)
			})
			r.Route("/logs", func(r chi.Router) {
				r.Post("/", s.CreateWorkoutLog)
				r.Get("/", s.ListWorkoutLogs)
				r.Get("/{id}", s.GetWorkoutLog)
				r.Put("/{id}", s.UpdateWorkoutLog)
				r.Delete("/{id}", s.DeleteWorkoutLog)
			})
			r.Get("/reports/summary", s.Summary)
		})
	})
}

// Handler is the root handler with tracing applied.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "fittrack-api")
}

// Run serves until the server is shut down by cleanup.CleanUp.
func (s *Server) Run(address string) error {
	s.httpServer = &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Second * 5,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.httpServer.Shutdown(ctx)
		},
	})
	slog.Info("server listening", slog.String("address", address))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, "OK", nil)
}
