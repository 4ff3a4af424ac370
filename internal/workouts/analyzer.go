package workouts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
)

type analyzerRepo interface {
	ListSessions(ctx context.Context, userID int, params ListParams) ([]Session, error)
	StrengthEntries(ctx context.Context, userID int, exerciseID int, from, to *time.Time) ([]StrengthEntry, error)
	RunEntries(ctx context.Context, userID int, from, to *time.Time) ([]RunEntry, error)
	SessionDates(ctx context.Context, userID int, since time.Time) (map[time.Time]bool, error)
}

type Analyzer struct {
	repo analyzerRepo
}

func NewAnalyzer(repo analyzerRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

const weekKeyLayout = "2006-01-02"

func weekKey(t time.Time) string {
	return WeekStart(t).Format(weekKeyLayout)
}

// WeeklyStrengthVolume aggregates strength volume per ISO week and muscle
// group, for the last given number of weeks.
func (a *Analyzer) WeeklyStrengthVolume(ctx context.Context, userID, weeks int) (_ map[string]map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.weeklyStrengthVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("weeks", weeks))

	if weeks <= 0 {
		weeks = 12
	}
	from := WeekStart(time.Now()).AddDate(0, 0, -7*(weeks-1))

	entries, err := a.repo.StrengthEntries(ctx, userID, 0, &from, nil)
	if err != nil {
		return nil, fmt.Errorf("strength entries: %w", err)
	}

	data := make(map[string]map[string]float64)
	for _, e := range entries {
		week := weekKey(e.SessionDate)
		if data[week] == nil {
			data[week] = make(map[string]float64)
		}
		group := e.MuscleGroup
		if group == "" {
			group = "Other"
		}
		data[week][group] += e.TotalVolume()
	}

	return data, nil
}

type ProgressPoint struct {
	Date         string  `json:"date"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Estimated1RM float64 `json:"estimated1RM"`
	Volume       float64 `json:"volume"`
}

// ExerciseProgress returns the chronological progress series for one exercise.
func (a *Analyzer) ExerciseProgress(ctx context.Context, userID, exerciseID, limit int) (_ []ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	entries, err := a.repo.StrengthEntries(ctx, userID, exerciseID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("strength entries: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	// entries come newest first, the chart wants chronological order
	points := make([]ProgressPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		weight := 0.0
		if e.WeightKg != nil {
			weight = *e.WeightKg
		}
		points = append(points, ProgressPoint{
			Date:         e.SessionDate.Format(weekKeyLayout),
			Weight:       weight,
			Reps:         e.Reps,
			Estimated1RM: EstimateOneRepMax(weight, e.Reps),
			Volume:       e.TotalVolume(),
		})
	}

	return points, nil
}

type RunningWeek struct {
	Week     string  `json:"week"`
	Distance float64 `json:"distance"`
	Runs     int     `json:"runs"`
	Duration int     `json:"duration"`
	AvgTrimp float64 `json:"avgTrimp"`
}

// RunningProgress aggregates runs into weekly distance/duration/TRIMP buckets.
func (a *Analyzer) RunningProgress(ctx context.Context, userID, weeks int) (_ []RunningWeek, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.runningProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weeks <= 0 {
		weeks = 12
	}
	from := WeekStart(time.Now()).AddDate(0, 0, -7*(weeks-1))

	entries, err := a.repo.RunEntries(ctx, userID, &from, nil)
	if err != nil {
		return nil, fmt.Errorf("run entries: %w", err)
	}

	type weekAgg struct {
		distance   float64
		runs       int
		duration   int
		trimpSum   float64
		trimpCount int
	}
	byWeek := make(map[string]*weekAgg)
	for _, e := range entries {
		week := weekKey(e.SessionDate)
		agg := byWeek[week]
		if agg == nil {
			agg = &weekAgg{}
			byWeek[week] = agg
		}
		agg.distance += e.DistanceKm
		agg.runs++
		if e.DurationMinutes != nil {
			agg.duration += *e.DurationMinutes
		}
		if trimp := e.TRIMP(); trimp != nil {
			agg.trimpSum += *trimp
			agg.trimpCount++
		}
	}

	weekKeys := make([]string, 0, len(byWeek))
	for week := range byWeek {
		weekKeys = append(weekKeys, week)
	}
	sort.Strings(weekKeys)

	result := make([]RunningWeek, 0, len(weekKeys))
	for _, week := range weekKeys {
		agg := byWeek[week]
		avgTrimp := 0.0
		if agg.trimpCount > 0 {
			avgTrimp = round2(agg.trimpSum / float64(agg.trimpCount))
		}
		result = append(result, RunningWeek{
			Week:     week,
			Distance: round2(agg.distance),
			Runs:     agg.runs,
			Duration: agg.duration,
			AvgTrimp: avgTrimp,
		})
	}

	return result, nil
}

type RunTypeStats struct {
	Type     string  `json:"type"`
	Count    int     `json:"count"`
	Distance float64 `json:"distance"`
}

func (a *Analyzer) RunTypeDistribution(ctx context.Context, userID int) (_ []RunTypeStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.runTypeDistribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.RunEntries(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("run entries: %w", err)
	}

	type agg struct {
		count    int
		distance float64
	}
	byType := make(map[string]*agg)
	for _, e := range entries {
		runType := e.RunType
		if runType == "" {
			runType = RunTypeOther
		}
		t := byType[runType]
		if t == nil {
			t = &agg{}
			byType[runType] = t
		}
		t.count++
		t.distance += e.DistanceKm
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	result := make([]RunTypeStats, 0, len(types))
	for _, t := range types {
		result = append(result, RunTypeStats{
			Type:     t,
			Count:    byType[t].count,
			Distance: round2(byType[t].distance),
		})
	}
	return result, nil
}

type MuscleGroupVolume struct {
	MuscleGroup string  `json:"muscleGroup"`
	Volume      float64 `json:"volume"`
}

func (a *Analyzer) MuscleGroupVolumes(ctx context.Context, userID int, from, to *time.Time) (_ []MuscleGroupVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.muscleGroupVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.StrengthEntries(ctx, userID, 0, from, to)
	if err != nil {
		return nil, fmt.Errorf("strength entries: %w", err)
	}

	byGroup := make(map[string]float64)
	for _, e := range entries {
		group := e.MuscleGroup
		if group == "" {
			group = "Other"
		}
		byGroup[group] += e.TotalVolume()
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	result := make([]MuscleGroupVolume, 0, len(groups))
	for _, g := range groups {
		result = append(result, MuscleGroupVolume{MuscleGroup: g, Volume: byGroup[g]})
	}
	return result, nil
}

type DayFrequency struct {
	Strength int `json:"strength"`
	Running  int `json:"running"`
}

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WorkoutFrequency counts sessions per day of week, split by type.
func (a *Analyzer) WorkoutFrequency(ctx context.Context, userID int) (_ map[string]DayFrequency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.workoutFrequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions, err := a.repo.ListSessions(ctx, userID, ListParams{Limit: 10000})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	data := make(map[string]DayFrequency, len(dayNames))
	for _, day := range dayNames {
		data[day] = DayFrequency{}
	}
	for _, s := range sessions {
		day := dayNames[int(s.SessionDate.Weekday())]
		freq := data[day]
		switch s.Type {
		case SessionTypeStrength:
			freq.Strength++
		case SessionTypeRunning:
			freq.Running++
		}
		data[day] = freq
	}

	return data, nil
}

type PRPoint struct {
	Date         string  `json:"date"`
	MaxWeight    float64 `json:"maxWeight"`
	Estimated1RM float64 `json:"estimated1RM"`
	IsPR         bool    `json:"isPr"`
}

// PRHistory returns the per-date best lifts for an exercise, flagging the
// dates where the estimated max exceeded everything before it.
func (a *Analyzer) PRHistory(ctx context.Context, userID, exerciseID int) (_ []PRPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.prHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	entries, err := a.repo.StrengthEntries(ctx, userID, exerciseID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("strength entries: %w", err)
	}

	type dayBest struct {
		maxWeight float64
		max1RM    float64
	}
	byDate := make(map[string]*dayBest)
	for _, e := range entries {
		weight := 0.0
		if e.WeightKg != nil {
			weight = *e.WeightKg
		}
		date := e.SessionDate.Format(weekKeyLayout)
		best := byDate[date]
		if best == nil {
			best = &dayBest{}
			byDate[date] = best
		}
		if weight > best.maxWeight {
			best.maxWeight = weight
		}
		if est := EstimateOneRepMax(weight, e.Reps); est > best.max1RM {
			best.max1RM = est
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]PRPoint, 0, len(dates))
	currentPR := 0.0
	for _, date := range dates {
		best := byDate[date]
		points = append(points, PRPoint{
			Date:         date,
			MaxWeight:    best.maxWeight,
			Estimated1RM: round1(best.max1RM),
			IsPR:         best.max1RM > currentPR,
		})
		if best.max1RM > currentPR {
			currentPR = best.max1RM
		}
	}

	return points, nil
}

type HeartRateZone struct {
	Zone       string  `json:"zone"`
	Name       string  `json:"name"`
	Minutes    int     `json:"minutes"`
	Percentage float64 `json:"percentage"`
	HRRange    string  `json:"hrRange"`
}

type RunningZonesReport struct {
	Zones          []HeartRateZone `json:"zones"`
	TotalMinutes   int             `json:"totalMinutes"`
	EstimatedMaxHR int             `json:"estimatedMaxHR"`
}

// RunningZones buckets run time into heart rate zones, relative to the
// highest recorded max heart rate (at least 190).
func (a *Analyzer) RunningZones(ctx context.Context, userID int) (_ *RunningZonesReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.runningZones")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.RunEntries(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("run entries: %w", err)
	}

	estimatedMaxHR := 190
	for _, e := range entries {
		if e.MaxHeartRate != nil && *e.MaxHeartRate > estimatedMaxHR {
			estimatedMaxHR = *e.MaxHeartRate
		}
	}

	zoneDefs := []struct {
		key  string
		name string
		min  float64
		max  float64
	}{
		{"zone1", "Recovery", 0.50, 0.60},
		{"zone2", "Aerobic", 0.60, 0.70},
		{"zone3", "Tempo", 0.70, 0.80},
		{"zone4", "Threshold", 0.80, 0.90},
		{"zone5", "VO2 Max", 0.90, 1.00},
	}

	minutes := make([]int, len(zoneDefs))
	for _, e := range entries {
		if e.AvgHeartRate == nil || e.DurationMinutes == nil {
			continue
		}
		hrPct := float64(*e.AvgHeartRate) / float64(estimatedMaxHR)
		bucketed := false
		for i, z := range zoneDefs {
			if hrPct >= z.min && hrPct < z.max {
				minutes[i] += *e.DurationMinutes
				bucketed = true
				break
			}
		}
		// everything at or above 90% lands in the top zone
		if !bucketed && hrPct >= 0.90 {
			minutes[len(minutes)-1] += *e.DurationMinutes
		}
	}

	totalMinutes := 0
	for _, m := range minutes {
		totalMinutes += m
	}

	zones := make([]HeartRateZone, 0, len(zoneDefs))
	for i, z := range zoneDefs {
		percentage := 0.0
		if totalMinutes > 0 {
			percentage = round1(float64(minutes[i]) / float64(totalMinutes) * 100)
		}
		zones = append(zones, HeartRateZone{
			Zone:       z.key,
			Name:       z.name,
			Minutes:    minutes[i],
			Percentage: percentage,
			HRRange:    fmt.Sprintf("%d-%d bpm", int(float64(estimatedMaxHR)*z.min), int(float64(estimatedMaxHR)*z.max)),
		})
	}

	return &RunningZonesReport{
		Zones:          zones,
		TotalMinutes:   totalMinutes,
		EstimatedMaxHR: estimatedMaxHR,
	}, nil
}

type WeekStats struct {
	Strength struct {
		Sessions int     `json:"sessions"`
		Volume   float64 `json:"volume"`
		Sets     int     `json:"sets"`
	} `json:"strength"`
	Running struct {
		Sessions int     `json:"sessions"`
		Distance float64 `json:"distance"`
		Duration int     `json:"duration"`
	} `json:"running"`
	MuscleVolume map[string]float64 `json:"muscleVolume"`
}

type WeekWindow struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Stats WeekStats `json:"stats"`
}

type WeekComparison struct {
	ThisWeek WeekWindow         `json:"thisWeek"`
	LastWeek WeekWindow         `json:"lastWeek"`
	Changes  map[string]float64 `json:"changes"`
}

// CompareWeeks computes this week vs last week stats with percent changes.
func (a *Analyzer) CompareWeeks(ctx context.Context, userID int, today time.Time) (_ *WeekComparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.compareWeeks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today = DateOnly(today)
	thisWeekStart := WeekStart(today)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	lastWeekEnd := thisWeekStart.AddDate(0, 0, -1)

	thisWeek, err := a.weekStats(ctx, userID, thisWeekStart, today)
	if err != nil {
		return nil, fmt.Errorf("this week stats: %w", err)
	}
	lastWeek, err := a.weekStats(ctx, userID, lastWeekStart, lastWeekEnd)
	if err != nil {
		return nil, fmt.Errorf("last week stats: %w", err)
	}

	return &WeekComparison{
		ThisWeek: WeekWindow{
			Start: thisWeekStart.Format(weekKeyLayout),
			End:   today.Format(weekKeyLayout),
			Stats: *thisWeek,
		},
		LastWeek: WeekWindow{
			Start: lastWeekStart.Format(weekKeyLayout),
			End:   lastWeekEnd.Format(weekKeyLayout),
			Stats: *lastWeek,
		},
		Changes: map[string]float64{
			"strengthVolume":   PercentChange(thisWeek.Strength.Volume, lastWeek.Strength.Volume),
			"strengthSessions": PercentChange(float64(thisWeek.Strength.Sessions), float64(lastWeek.Strength.Sessions)),
			"runningDistance":  PercentChange(thisWeek.Running.Distance, lastWeek.Running.Distance),
			"runningSessions":  PercentChange(float64(thisWeek.Running.Sessions), float64(lastWeek.Running.Sessions)),
		},
	}, nil
}

func (a *Analyzer) weekStats(ctx context.Context, userID int, from, to time.Time) (*WeekStats, error) {
	var stats WeekStats
	stats.MuscleVolume = make(map[string]float64)

	strengthSessions, err := a.repo.ListSessions(ctx, userID, ListParams{
		Type: SessionTypeStrength, From: &from, To: &to, Limit: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("list strength sessions: %w", err)
	}
	stats.Strength.Sessions = len(strengthSessions)

	runningSessions, err := a.repo.ListSessions(ctx, userID, ListParams{
		Type: SessionTypeRunning, From: &from, To: &to, Limit: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("list running sessions: %w", err)
	}
	stats.Running.Sessions = len(runningSessions)

	strengthEntries, err := a.repo.StrengthEntries(ctx, userID, 0, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("strength entries: %w", err)
	}
	for _, e := range strengthEntries {
		volume := e.TotalVolume()
		stats.Strength.Volume += volume
		stats.Strength.Sets++
		group := e.MuscleGroup
		if group == "" {
			group = "Other"
		}
		stats.MuscleVolume[group] += volume
	}

	runEntries, err := a.repo.RunEntries(ctx, userID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("run entries: %w", err)
	}
	for _, e := range runEntries {
		stats.Running.Distance += e.DistanceKm
		if e.DurationMinutes != nil {
			stats.Running.Duration += *e.DurationMinutes
		}
	}
	stats.Running.Distance = round2(stats.Running.Distance)

	return &stats, nil
}

type VolumeAlert struct {
	Type            string  `json:"type"`
	Message         string  `json:"message"`
	Severity        string  `json:"severity"`
	IncreasePercent float64 `json:"increasePercent"`
}

// VolumeSpikes flags week-over-week jumps in running mileage and per
// muscle group strength volume beyond the given thresholds.
func (a *Analyzer) VolumeSpikes(ctx context.Context, userID int, today time.Time, runningThresholdPct, strengthThresholdPct float64) (_ []VolumeAlert, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.volumeSpikes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	comparison, err := a.CompareWeeks(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	alerts := make([]VolumeAlert, 0)

	thisWeek, lastWeek := comparison.ThisWeek.Stats, comparison.LastWeek.Stats
	if IsSpike(thisWeek.Running.Distance, lastWeek.Running.Distance, runningThresholdPct) {
		increase := PercentChange(thisWeek.Running.Distance, lastWeek.Running.Distance)
		alerts = append(alerts, VolumeAlert{
			Type:            "running",
			Message:         fmt.Sprintf("Running mileage increased by %.1f%% this week!", increase),
			Severity:        "warning",
			IncreasePercent: increase,
		})
	}

	groups := make([]string, 0, len(thisWeek.MuscleVolume))
	for group := range thisWeek.MuscleVolume {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		current, previous := thisWeek.MuscleVolume[group], lastWeek.MuscleVolume[group]
		if IsSpike(current, previous, strengthThresholdPct) {
			increase := PercentChange(current, previous)
			alerts = append(alerts, VolumeAlert{
				Type:            "strength",
				Message:         fmt.Sprintf("%s volume increased by %.1f%%!", group, increase),
				Severity:        "warning",
				IncreasePercent: increase,
			})
		}
	}

	return alerts, nil
}

// Streak computes the user's current consecutive workout day streak.
func (a *Analyzer) Streak(ctx context.Context, userID int, today time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// the streak walk is bounded at a year, plus one bridged rest day
	since := DateOnly(today).AddDate(0, 0, -367)
	dates, err := a.repo.SessionDates(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("session dates: %w", err)
	}

	return ConsecutiveDayStreak(dates, today), nil
}

type HeatmapDay struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Strength int    `json:"strength"`
	Running  int    `json:"running"`
}

type ActivityHeatmap struct {
	Weeks     [][]HeatmapDay `json:"weeks"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
}

// Heatmap builds a Monday-aligned weekly activity grid over the last
// given number of weeks.
func (a *Analyzer) Heatmap(ctx context.Context, userID, weeks int, today time.Time) (_ *ActivityHeatmap, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.heatmap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weeks <= 0 {
		weeks = 52
	}
	endDate := DateOnly(today)
	startDate := endDate.AddDate(0, 0, -7*weeks)

	sessions, err := a.repo.ListSessions(ctx, userID, ListParams{
		From: &startDate, To: &endDate, Limit: 10000,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	type dayActivity struct {
		strength int
		running  int
		total    int
	}
	activity := make(map[string]*dayActivity)
	for _, s := range sessions {
		date := DateOnly(s.SessionDate).Format(weekKeyLayout)
		day := activity[date]
		if day == nil {
			day = &dayActivity{}
			activity[date] = day
		}
		switch s.Type {
		case SessionTypeStrength:
			day.strength++
		case SessionTypeRunning:
			day.running++
		}
		day.total++
	}

	weeksData := make([][]HeatmapDay, 0, weeks+1)
	for current := WeekStart(startDate); !current.After(endDate); current = current.AddDate(0, 0, 7) {
		week := make([]HeatmapDay, 0, 7)
		for dayOffset := 0; dayOffset < 7; dayOffset++ {
			day := current.AddDate(0, 0, dayOffset)
			dayStr := day.Format(weekKeyLayout)
			hd := HeatmapDay{Date: dayStr}
			if act := activity[dayStr]; act != nil {
				hd.Count = act.total
				hd.Strength = act.strength
				hd.Running = act.running
			}
			week = append(week, hd)
		}
		weeksData = append(weeksData, week)
	}

	return &ActivityHeatmap{
		Weeks:     weeksData,
		StartDate: startDate.Format(weekKeyLayout),
		EndDate:   endDate.Format(weekKeyLayout),
	}, nil
}
