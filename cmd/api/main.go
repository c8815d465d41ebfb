// @title FitTrack API
// @description API for the workout tracking app "FitTrack"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"

	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
	"github.com/limbo/fittrack/pkg/logging"
)

const defaultJWTTTL = time.Hour * 24 * 7

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logging.Setup(logging.SetupParams{
		Level:    cfg.GetStringOr("LOG_LEVEL", "info"),
		Format:   cfg.GetStringOr("LOG_FORMAT", "json"),
		FileName: cfg.GetString("LOG_FILE"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jwtSecret := cfg.GetString("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	promRegistry := metrics.SetupPrometheus()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	connectCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	pool, err := repository.NewPool(connectCtx, &dbCfg, repository.PoolOptions{
		TracingEnabled: cfg.GetBool("TRACING_ENABLED", false),
		Registerer:     promRegistry,
	})
	cancel()
	if err != nil {
		slog.Error("db connection error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	exercisesRepo := repository.NewCachedExercisesRepo(repository.NewExercisesRepo(pool), cfg.GetInt("EXERCISE_CACHE_MB", 8))
	plansRepo := repository.NewWorkoutPlansRepo(pool)
	schedulesRepo := repository.NewScheduledWorkoutsRepo(pool)
	logsRepo := repository.NewWorkoutLogsRepo(pool)
	checker := service.NewConsistencyChecker(exercisesRepo, plansRepo, schedulesRepo, logsRepo)

	var rateLimiter api.RequestRateLimiter
	if redisAddr := cfg.GetString("REDIS_ADDRESS"); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis ping failed, auth rate limit may be unavailable", slog.String("error", err.Error()))
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing redis client",
			F:    rdb.Close,
		})
		rateLimiter = redis_rate.NewLimiter(rdb)
	}

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(repository.NewUsersRepo(pool)),
		ExerciseService:    service.NewExerciseService(exercisesRepo),
		PlanService:        service.NewWorkoutPlanService(plansRepo, checker),
		ScheduleService:    service.NewScheduleService(schedulesRepo, checker),
		LogService:         service.NewWorkoutLogService(logsRepo, checker),
		ReportService:      service.NewReportService(logsRepo),
		JwtService:         jwtservice.New(jwtSecret, cfg.GetDuration("JWT_TTL", defaultJWTTTL)),
		Metrics:            metrics.NewManager("fittrack", "api", promRegistry),
		Gatherer:           promRegistry,
		RateLimiter:        rateLimiter,
		AuthRatePerMin:     cfg.GetInt("AUTH_RATE_LIMIT_PER_MIN", 20),
		CORSAllowedOrigins: cfg.GetList("CORS_ALLOWED_ORIGINS"),
	})
	go func() {
		if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup finished with errors", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
