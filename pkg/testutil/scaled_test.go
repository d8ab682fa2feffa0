package testutil

import (
	"fmt"
	"testing"
	"time"
)

var scaledTests = []struct {
	name string
	env  string
	d    time.Duration

	want time.Duration
}{
	{"default 10ms", "", 10 * time.Millisecond, 10 * time.Millisecond},

	{"2x 10ms", "2", 10 * time.Millisecond, 20 * time.Millisecond},
	{"2x 3s", "2", 3 * time.Second, 6 * time.Second},
	{"0.5x 10ms", "0.5", 10 * time.Millisecond, 5 * time.Millisecond},

	{"invalid treated as 1", "a", 10 * time.Millisecond, 10 * time.Millisecond},
	{"0 treated as 1", "0", 10 * time.Millisecond, 10 * time.Millisecond},
	{"negative treated as 1", "-1", 10 * time.Millisecond, 10 * time.Millisecond},
}

func TestScaled(t *testing.T) {
	for _, test := range scaledTests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(TimeScaleEnv, test.env)
			got := Scaled(test.d)
			if got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

type recordingT []string

func (t *recordingT) Helper() {}

func (t *recordingT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

func TestWithin(t *testing.T) {
	t.Setenv(TimeScaleEnv, "")

	var fast recordingT
	Within(&fast, time.Hour, func() {})
	if len(fast) != 0 {
		t.Errorf("Within reported error for fast function: %v", fast)
	}

	var slow recordingT
	Within(&slow, time.Nanosecond, func() { time.Sleep(time.Millisecond) })
	if len(slow) != 1 {
		t.Errorf("Within reported %d errors for slow function, want 1", len(slow))
	}
}
