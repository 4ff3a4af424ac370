package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fitkeep/fitkeep/internal/auth"
	"github.com/fitkeep/fitkeep/internal/config"
	"github.com/fitkeep/fitkeep/internal/dashboard"
	"github.com/fitkeep/fitkeep/internal/db"
	"github.com/fitkeep/fitkeep/internal/exercises"
	"github.com/fitkeep/fitkeep/internal/export"
	"github.com/fitkeep/fitkeep/internal/measurements"
	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/records"
	"github.com/fitkeep/fitkeep/internal/recovery"
	"github.com/fitkeep/fitkeep/internal/telemetry/metrics"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/templates"
	"github.com/fitkeep/fitkeep/internal/users"
	"github.com/fitkeep/fitkeep/internal/workouts"
	"github.com/fitkeep/fitkeep/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string

	RedisPassword string

	// a user created on startup when the users table has no matching
	// username, so a fresh deployment can log in
	BootstrapUsername string
	BootstrapPassword string
	BootstrapEmail    string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.Config.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitkeep_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessionTTL := time.Duration(params.Config.SessionTTLHours) * time.Hour
	authService := auth.NewAuthService(sessionTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(
		params.Config.HoneycombTracingEnabled,
		"fitkeep-backend",
	)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if err := s.bootstrapUser(ctx, params); err != nil {
		return nil, fmt.Errorf("bootstrap user: %w", err)
	}

	return s, nil
}

func (s *Server) bootstrapUser(ctx context.Context, params NewServerParams) error {
	if params.BootstrapUsername == "" {
		return nil
	}

	usersRepo := users.NewRepo(s.dbPool)
	_, err := usersRepo.GetByUsername(ctx, params.BootstrapUsername)
	switch {
	case err == nil:
		log.Debugf("bootstrap user [%s] already present", params.BootstrapUsername)
		return nil
	case errors.Is(err, users.ErrUserNotFound):
		passwordHash, hashErr := pkg.HashPassword(params.BootstrapPassword)
		if hashErr != nil {
			return fmt.Errorf("hash bootstrap password: %w", hashErr)
		}
		created, addErr := usersRepo.Add(ctx, users.User{
			Username:     params.BootstrapUsername,
			Email:        params.BootstrapEmail,
			PasswordHash: passwordHash,
		})
		if addErr != nil {
			return fmt.Errorf("add bootstrap user: %w", addErr)
		}
		log.Infof("bootstrap user [%s] created, id [%d]", created.Username, created.ID)
		return nil
	default:
		return err
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm fitkeep, I keep you fit")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	api := r.PathPrefix("/api/v1").Subrouter()

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo, s.authService)

	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.
		HandleFunc("/login", usersHandler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authRouter.
		HandleFunc("/logout", usersHandler.HandleLogout).
		Methods("POST", "OPTIONS").Name("logout")

	// rate limit the /login and /logout endpoints to prevent abuse
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter.Use(middleware.RateLimit(reqRateLimiter, "login", s.config.LoginRatePerHour, s.metricsManager))
	authRouter.Use(middleware.Cors())

	api.HandleFunc("/auth/me", usersHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	api.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	api.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	api.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	api.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	api.HandleFunc("/exercises/{id}/substitutes", exercisesHandler.HandleListSubstitutes).Methods("GET", "OPTIONS").Name("list-substitutes")
	api.HandleFunc("/exercises/{id}/substitutes/{subId}", exercisesHandler.HandleAddSubstitute).Methods("POST", "OPTIONS").Name("new-substitute")
	api.HandleFunc("/exercises/{id}/substitutes/{subId}", exercisesHandler.HandleRemoveSubstitute).Methods("DELETE", "OPTIONS").Name("remove-substitute")
	api.HandleFunc("/exercises/{id}/history", exercisesHandler.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsAnalyzer := workouts.NewAnalyzer(workoutsRepo)
	recordsRepo := records.NewRepo(s.dbPool)
	templatesRepo := templates.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(
		workoutsRepo,
		records.NewTracker(recordsRepo),
		templates.NewPrefiller(templatesRepo),
		s.metricsManager,
	)
	api.HandleFunc("/workouts", workoutsHandler.HandleNewSession).Methods("POST", "OPTIONS").Name("new-workout")
	api.HandleFunc("/workouts", workoutsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdateSession).Methods("PUT", "OPTIONS").Name("update-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-workout")
	api.HandleFunc("/workouts/{id}/strength", workoutsHandler.HandleAddStrengthLog).Methods("POST", "OPTIONS").Name("new-strength-log")
	api.HandleFunc("/workouts/{id}/running", workoutsHandler.HandleAddRunningLog).Methods("POST", "OPTIONS").Name("new-running-log")

	recoveryRepo := recovery.NewRepo(s.dbPool)
	recoveryAnalyzer := recovery.NewAnalyzer(recoveryRepo)
	recoveryHandler := recovery.NewHandler(recoveryRepo, recoveryAnalyzer)
	api.HandleFunc("/recovery", recoveryHandler.HandleUpsert).Methods("POST", "OPTIONS").Name("upsert-recovery")
	api.HandleFunc("/recovery", recoveryHandler.HandleList).Methods("GET", "OPTIONS").Name("list-recovery")
	api.HandleFunc("/recovery/{id}", recoveryHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-recovery")

	recordsHandler := records.NewHandler(recordsRepo)
	api.HandleFunc("/records", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	api.HandleFunc("/records/timeline", recordsHandler.HandleTimeline).Methods("GET", "OPTIONS").Name("records-timeline")
	api.HandleFunc("/records/{exerciseId}/history", recordsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("records-history")

	measurementsHandler := measurements.NewHandler(measurements.NewRepo(s.dbPool))
	api.HandleFunc("/measurements", measurementsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	api.HandleFunc("/measurements", measurementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	api.HandleFunc("/measurements/comparison", measurementsHandler.HandleComparison).Methods("GET", "OPTIONS").Name("measurements-comparison")
	api.HandleFunc("/measurements/progress/{field}", measurementsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("measurements-progress")
	api.HandleFunc("/measurements/{id}", measurementsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-measurement")

	templatesHandler := templates.NewHandler(templatesRepo, templates.NewPrefiller(templatesRepo))
	api.HandleFunc("/templates", templatesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-template")
	api.HandleFunc("/templates", templatesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	api.HandleFunc("/templates/{id}", templatesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-template")
	api.HandleFunc("/templates/{id}", templatesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-template")
	api.HandleFunc("/templates/{id}", templatesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")
	api.HandleFunc("/templates/{id}/prefill", templatesHandler.HandlePrefill).Methods("GET", "OPTIONS").Name("prefill-template")

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(
		workoutsRepo,
		workoutsAnalyzer,
		recordsRepo,
		recoveryAnalyzer,
		time.Duration(s.config.DashboardCacheTTLSeconds)*time.Second,
		s.config.RunningSpikeThreshold,
		s.config.StrengthSpikeThreshold,
	))
	api.HandleFunc("/dashboard/summary", dashboardHandler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
	api.HandleFunc("/dashboard/alerts", dashboardHandler.HandleAlerts).Methods("GET", "OPTIONS").Name("dashboard-alerts")

	analyticsHandler := workouts.NewAnalyticsHandler(workoutsAnalyzer)
	api.HandleFunc("/analytics/strength-volume", analyticsHandler.HandleStrengthVolume).Methods("GET", "OPTIONS").Name("strength-volume")
	api.HandleFunc("/analytics/exercise-progress/{id}", analyticsHandler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	api.HandleFunc("/analytics/running-progress", analyticsHandler.HandleRunningProgress).Methods("GET", "OPTIONS").Name("running-progress")
	api.HandleFunc("/analytics/run-type-distribution", analyticsHandler.HandleRunTypeDistribution).Methods("GET", "OPTIONS").Name("run-type-distribution")
	api.HandleFunc("/analytics/muscle-group-volume", analyticsHandler.HandleMuscleGroupVolume).Methods("GET", "OPTIONS").Name("muscle-group-volume")
	api.HandleFunc("/analytics/recovery-trends", recoveryHandler.HandleTrends).Methods("GET", "OPTIONS").Name("recovery-trends")
	api.HandleFunc("/analytics/workout-frequency", analyticsHandler.HandleWorkoutFrequency).Methods("GET", "OPTIONS").Name("workout-frequency")
	api.HandleFunc("/analytics/pr-history/{id}", analyticsHandler.HandlePRHistory).Methods("GET", "OPTIONS").Name("pr-history")
	api.HandleFunc("/analytics/running-zones", analyticsHandler.HandleRunningZones).Methods("GET", "OPTIONS").Name("running-zones")
	api.HandleFunc("/analytics/week-comparison", analyticsHandler.HandleWeekComparison).Methods("GET", "OPTIONS").Name("week-comparison")
	api.HandleFunc("/analytics/activity-heatmap", analyticsHandler.HandleHeatmap).Methods("GET", "OPTIONS").Name("activity-heatmap")

	exportHandler := export.NewHandler(workoutsRepo, recoveryRepo, recordsRepo, s.metricsManager)
	api.HandleFunc("/export/strength", exportHandler.HandleStrength).Methods("GET", "OPTIONS").Name("export-strength")
	api.HandleFunc("/export/running", exportHandler.HandleRunning).Methods("GET", "OPTIONS").Name("export-running")
	api.HandleFunc("/export/recovery", exportHandler.HandleRecovery).Methods("GET", "OPTIONS").Name("export-recovery")
	api.HandleFunc("/export/prs", exportHandler.HandlePRs).Methods("GET", "OPTIONS").Name("export-prs")
	api.HandleFunc("/export/all", exportHandler.HandleAll).Methods("GET", "OPTIONS").Name("export-all")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(s.config.Port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
