package target

import "github.com/rohmanhakim/autohackgovernor/pkg/units"

// Params carries every tunable constant the target state machine needs.
// These are compile-time constants in spec.md; the AMBIENT STACK expansion
// makes them configurable (internal/config) without changing any default.
type Params struct {
	ReservationRate float64
	GracePeriodMs   float64
	MemoryPerThread units.RAMHundredths

	WeakenSecurityEffect units.SecurityThousandths
	HackSecurityEffect   units.SecurityThousandths
	GrowSecurityEffect   units.SecurityThousandths

	GrowTimeRatio   float64
	WeakenTimeRatio float64
}

// DefaultParams returns spec.md's literal constants: reservation rate 0.9,
// a 50ms grace period, ~1.75GB per thread, weaken/hack/grow security
// effects of 0.050/0.002/0.004, and the 3.2/4.0 timing ratios.
func DefaultParams() Params {
	return Params{
		ReservationRate:      0.9,
		GracePeriodMs:        50,
		MemoryPerThread:      175,
		WeakenSecurityEffect: 50,
		HackSecurityEffect:   2,
		GrowSecurityEffect:   4,
		GrowTimeRatio:        3.2,
		WeakenTimeRatio:      4.0,
	}
}
