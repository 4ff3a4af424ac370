package recovery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
)

type analyzerRepo interface {
	ListSince(ctx context.Context, userID int, since time.Time) ([]Log, error)
}

type Analyzer struct {
	repo analyzerRepo
}

func NewAnalyzer(repo analyzerRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

type WeeklyAverage struct {
	AvgSleep      float64 `json:"avgSleep"`
	AvgEnergy     float64 `json:"avgEnergy"`
	AvgSoreness   float64 `json:"avgSoreness"`
	AvgMotivation float64 `json:"avgMotivation"`
	LogsCount     int     `json:"logsCount"`
}

type WeekTrend struct {
	Week       string  `json:"week"`
	Sleep      float64 `json:"sleep"`
	Energy     float64 `json:"energy"`
	Soreness   float64 `json:"soreness"`
	Motivation float64 `json:"motivation"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type metricAvg struct {
	sum   int
	count int
}

func (a *metricAvg) add(v *int) {
	if v != nil {
		a.sum += *v
		a.count++
	}
}

func (a *metricAvg) value() float64 {
	if a.count == 0 {
		return 0
	}
	return round1(float64(a.sum) / float64(a.count))
}

// WeeklyAverages computes per-metric averages over the last 7 days.
// Returns nil when the user has no logs in that window.
func (a *Analyzer) WeeklyAverages(ctx context.Context, userID int, today time.Time) (_ *WeeklyAverage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.recovery.weeklyAverages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	since := workouts.DateOnly(today).AddDate(0, 0, -7)
	logs, err := a.repo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list recovery logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}

	var sleep, energy, soreness, motivation metricAvg
	for _, l := range logs {
		sleep.add(l.SleepQuality)
		energy.add(l.EnergyLevel)
		soreness.add(l.MuscleSoreness)
		motivation.add(l.MotivationScore)
	}

	return &WeeklyAverage{
		AvgSleep:      sleep.value(),
		AvgEnergy:     energy.value(),
		AvgSoreness:   soreness.value(),
		AvgMotivation: motivation.value(),
		LogsCount:     len(logs),
	}, nil
}

// Trends buckets the recovery metrics into weekly averages over the last
// given number of weeks, oldest first.
func (a *Analyzer) Trends(ctx context.Context, userID, weeks int, today time.Time) (_ []WeekTrend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.recovery.trends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weeks <= 0 {
		weeks = 12
	}
	since := workouts.WeekStart(today).AddDate(0, 0, -7*(weeks-1))

	logs, err := a.repo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list recovery logs: %w", err)
	}

	type weekAgg struct {
		sleep, energy, soreness, motivation metricAvg
	}
	byWeek := make(map[string]*weekAgg)
	for _, l := range logs {
		week := workouts.WeekStart(l.LogDate).Format("2006-01-02")
		agg := byWeek[week]
		if agg == nil {
			agg = &weekAgg{}
			byWeek[week] = agg
		}
		agg.sleep.add(l.SleepQuality)
		agg.energy.add(l.EnergyLevel)
		agg.soreness.add(l.MuscleSoreness)
		agg.motivation.add(l.MotivationScore)
	}

	weekKeys := make([]string, 0, len(byWeek))
	for week := range byWeek {
		weekKeys = append(weekKeys, week)
	}
	sort.Strings(weekKeys)

	trends := make([]WeekTrend, 0, len(weekKeys))
	for _, week := range weekKeys {
		agg := byWeek[week]
		trends = append(trends, WeekTrend{
			Week:       week,
			Sleep:      agg.sleep.value(),
			Energy:     agg.energy.value(),
			Soreness:   agg.soreness.value(),
			Motivation: agg.motivation.value(),
		})
	}

	return trends, nil
}
