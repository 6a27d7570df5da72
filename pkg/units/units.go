// Package units converts the governor's floating-point quantities (RAM in
// gigabytes, security level) into integer representations so that summing
// free RAM across hackers or subtracting security across phases never
// suffers from float aliasing or subtractive cancellation.
package units

import "math"

// RAMHundredths is round(gb * 100): one unit is 0.01 GB.
type RAMHundredths int64

// SecurityThousandths is round(security * 1000): one unit is 0.001 security.
type SecurityThousandths int64

func GBToRAMHundredths(gb float64) RAMHundredths {
	return RAMHundredths(math.Round(gb * 100))
}

func (r RAMHundredths) GB() float64 {
	return float64(r) / 100
}

func SecurityToThousandths(security float64) SecurityThousandths {
	return SecurityThousandths(math.Round(security * 1000))
}

func (s SecurityThousandths) Float() float64 {
	return float64(s) / 1000
}
