package config

import "time"

// SpeedCurve computes the gravity interval from the number of cleared rows.
type SpeedCurve struct {
	base time.Duration
	cfg  SpeedupConfig
}

// NewSpeedCurve creates a curve from the timing configuration.
func NewSpeedCurve(t TimingConfig) *SpeedCurve {
	return &SpeedCurve{
		base: time.Duration(t.TickIntervalMS) * time.Millisecond,
		cfg:  t.Speedup,
	}
}

// Level returns the speed level reached after clearing lines rows.
func (s *SpeedCurve) Level(lines int) int {
	if !s.cfg.Enabled || s.cfg.LinesPerLevel <= 0 || lines <= 0 {
		return 0
	}
	return lines / s.cfg.LinesPerLevel
}

// Interval returns the tick interval after clearing lines rows.
func (s *SpeedCurve) Interval(lines int) time.Duration {
	level := s.Level(lines)
	if level == 0 {
		return s.base
	}
	d := s.base - time.Duration(level*s.cfg.StepMS)*time.Millisecond
	floor := time.Duration(s.cfg.MinIntervalMS) * time.Millisecond
	if d < floor {
		return floor
	}
	return d
}
