package util

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var (
	runtimeNumCPU     = runtime.NumCPU
	_positiveInfinity = 1
)

// ParseConcurrency parses a --concurrency flag value: either a bare positive
// integer, or a percentage of available CPUs (e.g. "50%").
func ParseConcurrency(concurrencyRaw string) (int, error) {
	if strings.HasSuffix(concurrencyRaw, "%") {
		percent, err := strconv.ParseFloat(concurrencyRaw[:len(concurrencyRaw)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value for --concurrency flag: expected a number or a percentage like 50%%: %w", err)
		}
		if percent > 0 && !math.IsInf(percent, _positiveInfinity) {
			return int(math.Max(1, float64(runtimeNumCPU())*percent/100)), nil
		}
		return 0, fmt.Errorf("invalid percentage value for --concurrency flag: must be a positive percentage")
	}

	i, err := strconv.Atoi(concurrencyRaw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for --concurrency flag: expected a positive integer: %w", err)
	}
	if i < 1 {
		return 0, fmt.Errorf("invalid value %d for --concurrency flag: must be >= 1", i)
	}
	return i, nil
}

// ConcurrencyValue lets pflag accept either a number or a percentage of
// available CPUs as the value for --concurrency.
type ConcurrencyValue struct {
	Value *int
	raw   string
}

var _ pflag.Value = &ConcurrencyValue{}

func (cv *ConcurrencyValue) String() string { return cv.raw }

func (cv *ConcurrencyValue) Set(value string) error {
	parsed, err := ParseConcurrency(value)
	if err != nil {
		return err
	}
	cv.raw = value
	*cv.Value = parsed
	return nil
}

func (cv *ConcurrencyValue) Type() string { return "number|percentage" }
