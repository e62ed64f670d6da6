package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	Trend                fmt.Stringer
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation. The rate is measured over the whole run, so it stays
// zero until a generation has actually been advanced.
func (s *Stats) Update(generation int, population int, now time.Time) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.GenerationsPerSecond = 0
	if elapsed := now.Sub(s.StartTime); generation > 0 && elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary renders the stats as a single log line
func (s *Stats) Summary() string {
	trend := "Active"
	if s.Trend != nil {
		trend = s.Trend.String()
	}
	return fmt.Sprintf("%d generations in %.1fs | %.1f gen/sec | avg population %.1f | last population %d (%s)",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(), s.GenerationsPerSecond,
		s.AveragePopulation, s.ActiveCells, trend)
}
