package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/records"
	"github.com/fitkeep/fitkeep/internal/recovery"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard

const (
	recentWorkoutsLimit = 5
	recentPRsLimit      = 5

	// weekly session targets, from the original tracker setup
	strengthTargetPerWeek = 2
	runningTargetPerWeek  = 4
)

type workoutsRepo interface {
	ListSessions(ctx context.Context, userID int, params workouts.ListParams) ([]workouts.Session, error)
	SessionCounts(ctx context.Context, userID int, since time.Time) (int, map[string]int, error)
}

type workoutAnalyzer interface {
	CompareWeeks(ctx context.Context, userID int, today time.Time) (*workouts.WeekComparison, error)
	Streak(ctx context.Context, userID int, today time.Time) (int, error)
	VolumeSpikes(ctx context.Context, userID int, today time.Time, runningThresholdPct, strengthThresholdPct float64) ([]workouts.VolumeAlert, error)
}

type recordsRepo interface {
	Timeline(ctx context.Context, userID, limit int) ([]records.TimelineEntry, error)
}

type recoveryAnalyzer interface {
	WeeklyAverages(ctx context.Context, userID int, today time.Time) (*recovery.WeeklyAverage, error)
}

type Stats struct {
	TotalWorkouts    int     `json:"totalWorkouts"`
	WorkoutsThisWeek int     `json:"workoutsThisWeek"`
	StrengthThisWeek int     `json:"strengthThisWeek"`
	RunningThisWeek  int     `json:"runningThisWeek"`
	WeeklyDistance   float64 `json:"weeklyDistance"`
	WeeklyVolume     float64 `json:"weeklyVolume"`
	Streak           int     `json:"streak"`
	StrengthTarget   int     `json:"strengthTarget"`
	RunningTarget    int     `json:"runningTarget"`
}

type Summary struct {
	Stats           Stats                   `json:"stats"`
	RecentWorkouts  []workouts.Session      `json:"recentWorkouts"`
	RecentPRs       []records.TimelineEntry `json:"recentPrs"`
	RecoveryAverage *recovery.WeeklyAverage `json:"recoveryAverage,omitempty"`
	GeneratedAt     time.Time               `json:"generatedAt"`
}

type Service struct {
	workoutsRepo     workoutsRepo
	workoutAnalyzer  workoutAnalyzer
	recordsRepo      recordsRepo
	recoveryAnalyzer recoveryAnalyzer

	cache    *freecache.Cache
	cacheTTL time.Duration

	runningSpikeThreshold  float64
	strengthSpikeThreshold float64
}

func NewService(
	workoutsRepo workoutsRepo,
	workoutAnalyzer workoutAnalyzer,
	recordsRepo recordsRepo,
	recoveryAnalyzer recoveryAnalyzer,
	cacheTTL time.Duration,
	runningSpikeThreshold float64,
	strengthSpikeThreshold float64,
) *Service {
	megabyte := 1024 * 1024
	return &Service{
		workoutsRepo:           workoutsRepo,
		workoutAnalyzer:        workoutAnalyzer,
		recordsRepo:            recordsRepo,
		recoveryAnalyzer:       recoveryAnalyzer,
		cache:                  freecache.NewCache(5 * megabyte),
		cacheTTL:               cacheTTL,
		runningSpikeThreshold:  runningSpikeThreshold,
		strengthSpikeThreshold: strengthSpikeThreshold,
	}
}

// Summary assembles the dashboard overview, served from cache within the
// configured TTL.
func (s *Service) Summary(ctx context.Context, userID int, today time.Time) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte(fmt.Sprintf("summary::%d", userID))
	if cachedBytes, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
		var cached Summary
		if unmarshalErr := json.Unmarshal(cachedBytes, &cached); unmarshalErr == nil {
			log.Tracef("dashboard summary for user %d served from cache", userID)
			return &cached, nil
		} else {
			log.Errorf("unmarshal cached dashboard summary: %s", unmarshalErr)
		}
	}

	summary, err := s.buildSummary(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	if summaryBytes, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(cacheKey, summaryBytes, int(s.cacheTTL.Seconds())); err != nil {
			log.Errorf("cache dashboard summary: %s", err)
		}
	}

	return summary, nil
}

// Alerts returns week-over-week volume spike warnings.
func (s *Service) Alerts(ctx context.Context, userID int, today time.Time) (_ []workouts.VolumeAlert, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.alerts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.workoutAnalyzer.VolumeSpikes(ctx, userID, today, s.runningSpikeThreshold, s.strengthSpikeThreshold)
}

func (s *Service) buildSummary(ctx context.Context, userID int, today time.Time) (*Summary, error) {
	weekStart := workouts.WeekStart(today)

	totalWorkouts, thisWeekByType, err := s.workoutsRepo.SessionCounts(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("session counts: %w", err)
	}

	workoutsThisWeek := 0
	for _, count := range thisWeekByType {
		workoutsThisWeek += count
	}

	comparison, err := s.workoutAnalyzer.CompareWeeks(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("compare weeks: %w", err)
	}

	streak, err := s.workoutAnalyzer.Streak(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("streak: %w", err)
	}

	recentWorkouts, err := s.workoutsRepo.ListSessions(ctx, userID, workouts.ListParams{Limit: recentWorkoutsLimit})
	if err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}

	recentPRs, err := s.recordsRepo.Timeline(ctx, userID, recentPRsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent records: %w", err)
	}

	// missing recovery data should not take the whole dashboard down
	recoveryAverage, err := s.recoveryAnalyzer.WeeklyAverages(ctx, userID, today)
	if err != nil {
		log.Errorf("dashboard, recovery weekly average: %s", err)
		recoveryAverage = nil
	}

	return &Summary{
		Stats: Stats{
			TotalWorkouts:    totalWorkouts,
			WorkoutsThisWeek: workoutsThisWeek,
			StrengthThisWeek: thisWeekByType[workouts.SessionTypeStrength],
			RunningThisWeek:  thisWeekByType[workouts.SessionTypeRunning],
			WeeklyDistance:   comparison.ThisWeek.Stats.Running.Distance,
			WeeklyVolume:     comparison.ThisWeek.Stats.Strength.Volume,
			Streak:           streak,
			StrengthTarget:   strengthTargetPerWeek,
			RunningTarget:    runningTargetPerWeek,
		},
		RecentWorkouts:  recentWorkouts,
		RecentPRs:       recentPRs,
		RecoveryAverage: recoveryAverage,
		GeneratedAt:     time.Now(),
	}, nil
}
