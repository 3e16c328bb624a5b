package harness

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrInvalidSpeed is returned for non-positive, NaN or infinite multipliers.
var ErrInvalidSpeed = errors.New("harness: speed multiplier must be positive and finite")

const (
	// MinInterval bounds how fast the compute loop may spin.
	MinInterval = 50 * time.Microsecond
	// MaxInterval bounds how long one tick may be delayed.
	MaxInterval = 10 * time.Second
)

// Speed is the shared simulation speed multiplier. The interactive side
// mutates it; the compute loop reads it once per tick.
type Speed struct {
	mu sync.Mutex
	v  float64
}

// NewSpeed returns a multiplier set to 1.
func NewSpeed() *Speed {
	return &Speed{v: 1}
}

// ValidSpeed reports whether f is accepted as a multiplier.
func ValidSpeed(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (s *Speed) Get() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

func (s *Speed) Set(f float64) error {
	if !ValidSpeed(f) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, f)
	}
	s.mu.Lock()
	s.v = f
	s.mu.Unlock()
	return nil
}

// Scale multiplies the current speed by f. The multiplier is left unchanged if
// the result would not be a valid speed.
func (s *Speed) Scale(f float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.v * f
	if !ValidSpeed(next) {
		return fmt.Errorf("%w: %v * %v", ErrInvalidSpeed, s.v, f)
	}
	s.v = next
	return nil
}

// Reset restores the multiplier to 1.
func (s *Speed) Reset() {
	s.mu.Lock()
	s.v = 1
	s.mu.Unlock()
}

// Interval is base divided by the current multiplier, clamped to
// [MinInterval, MaxInterval] before converting back to a Duration so that
// tiny multipliers cannot overflow int64.
func (s *Speed) Interval(base time.Duration) time.Duration {
	f := float64(base) / s.Get()
	if f >= float64(MaxInterval) {
		return MaxInterval
	}
	if f <= float64(MinInterval) {
		return MinInterval
	}
	return time.Duration(f)
}
