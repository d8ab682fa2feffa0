package testutil

import (
	"os"
	"strconv"
	"time"
)

// TimeScaleEnv is the name of the environment variable that scales the time
// limits of tests, for slow or heavily loaded machines.
const TimeScaleEnv = "CONSLIST_TEST_TIME_SCALE"

// Scaled returns d scaled by $CONSLIST_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * getTestTimeScale())
}

func getTestTimeScale() float64 {
	env := os.Getenv(TimeScaleEnv)
	if env == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(env, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}

// Within runs f and reports an error if it takes longer than Scaled(d). It
// returns how long f took.
func Within(t Errorfer, d time.Duration, f func()) time.Duration {
	t.Helper()
	limit := Scaled(d)
	start := time.Now()
	f()
	elapsed := time.Since(start)
	if elapsed > limit {
		t.Errorf("took %v, want at most %v", elapsed, limit)
	}
	return elapsed
}
