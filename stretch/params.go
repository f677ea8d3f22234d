package stretch

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultMemoryKiB is the default memory cost in KiB (64 MiB).
	DefaultMemoryKiB uint32 = 64 * 1024

	// DefaultTime is the default number of passes over memory.
	DefaultTime uint32 = 3

	// DefaultParallelism is the default number of lanes.
	DefaultParallelism uint32 = 1

	// MaxParallelism is the largest lane count the Argon2 implementation
	// accepts.
	MaxParallelism uint32 = 255

	// minMemoryPerLane is the RFC 9106 floor of 8 KiB blocks per lane.
	minMemoryPerLane uint32 = 8
)

// Params is the Argon2id cost configuration.
type Params struct {
	// MemoryKiB is the memory cost in KiB.
	// Minimum: 8 * Parallelism.  Default: [DefaultMemoryKiB] (64 MiB).
	MemoryKiB uint32

	// Time is the number of passes over memory (iterations).
	// Minimum: 1.  Default: [DefaultTime] (3).
	Time uint32

	// Parallelism is the number of lanes hashed concurrently.
	// Range: 1..255.  Default: [DefaultParallelism] (1).
	Parallelism uint32
}

// DefaultParams returns the recommended cost configuration: m=64 MiB, t=3,
// p=1.
func DefaultParams() Params {
	return Params{
		MemoryKiB:   DefaultMemoryKiB,
		Time:        DefaultTime,
		Parallelism: DefaultParallelism,
	}
}

// Validate reports whether Argon2id accepts p. The returned error wraps
// [ErrInvalidParameters].
func (p Params) Validate() error {
	if p.Time < 1 {
		return fmt.Errorf("%w: time cost must be ≥ 1, got %d", ErrInvalidParameters, p.Time)
	}
	if p.Parallelism < 1 || p.Parallelism > MaxParallelism {
		return fmt.Errorf("%w: parallelism must be in [1, %d], got %d",
			ErrInvalidParameters, MaxParallelism, p.Parallelism)
	}
	if p.MemoryKiB < minMemoryPerLane*p.Parallelism {
		return fmt.Errorf("%w: memory (%d KiB) must be ≥ 8×parallelism (%d KiB)",
			ErrInvalidParameters, p.MemoryKiB, minMemoryPerLane*p.Parallelism)
	}
	return nil
}

// String renders p in the PHC parameter notation, e.g. "m=65536,t=3,p=1".
func (p Params) String() string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.MemoryKiB, p.Time, p.Parallelism)
}

// LogValue implements slog.LogValuer.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("memory_kib", uint64(p.MemoryKiB)),
		slog.Uint64("time", uint64(p.Time)),
		slog.Uint64("parallelism", uint64(p.Parallelism)),
	)
}
