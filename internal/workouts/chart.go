package workouts

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownMetric = errors.New("unknown metric")

type Metric string

const (
	MetricMax   Metric = "max"
	MetricTotal Metric = "total"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricMax, MetricTotal:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMetric, s)
	}
}

func (m Metric) valueOf(rec ExerciseRecord) int {
	if m == MetricMax {
		return rec.Max
	}
	return rec.Total
}

type ChartSeries struct {
	Exercise string `json:"exercise"`
	// Name and Unit are for chart titles and axes, e.g. "Planks (sec)" and "sec"
	Name   string   `json:"name"`
	Unit   string   `json:"unit"`
	Metric Metric   `json:"metric"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

func (s ChartSeries) Len() int {
	return len(s.Labels)
}

// Last returns a series with only the n most recent points.
func (s ChartSeries) Last(n int) ChartSeries {
	if n <= 0 || n >= len(s.Labels) {
		return s
	}
	s.Labels = s.Labels[len(s.Labels)-n:]
	s.Values = s.Values[len(s.Values)-n:]
	return s
}

// ChartData projects the workouts into a label/value series for one exercise,
// sorted ascending by date. Unlike CalculateStats, zero values are kept so the
// chart shows the literal daily value.
func ChartData(workouts []WorkoutRecord, kind ExerciseKind, metric Metric) ChartSeries {
	series := ChartSeries{
		Exercise: kind.String(),
		Metric:   metric,
		Labels:   make([]string, 0, len(workouts)),
		Values:   make([]int, 0, len(workouts)),
	}
	if kind < 0 || kind >= exerciseKindsCount {
		return series
	}
	series.Name = kind.DisplayName()
	series.Unit = kind.Unit()

	sorted := make([]WorkoutRecord, len(workouts))
	copy(sorted, workouts)
	sortByDate(sorted)

	for _, w := range sorted {
		day, err := time.Parse(DateLayout, w.Date)
		if err != nil {
			continue
		}
		series.Labels = append(series.Labels, fmt.Sprintf("%d/%d", int(day.Month()), day.Day()))
		series.Values = append(series.Values, metric.valueOf(w.Exercises[kind]))
	}

	return series
}
