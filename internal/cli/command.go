package cli

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// MathLibFlag loads bc's standard math library and sets scale to 20, so
	// division yields fractional results.
	MathLibFlag = "-l"

	// QuietFlag suppresses the GNU bc welcome banner.
	QuietFlag = "-q"
)

// BuildArgs returns the fixed calculator arguments.
func BuildArgs() []string {
	return []string{MathLibFlag, QuietFlag}
}

// BuildSupervisedArgs returns the supervisor arguments that run bcPath with
// the fixed calculator arguments under a deadline of timeout.
func BuildSupervisedArgs(bcPath string, timeout time.Duration) []string {
	return append([]string{FormatDuration(timeout), bcPath}, BuildArgs()...)
}

// FormatDuration renders d in the supervisor's "<seconds>s" form.
// Zero or negative durations render as "0s", which the supervisor treats as
// no limit. Other durations are rounded up to whole seconds.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	return fmt.Sprintf("%ds", int64(math.Ceil(d.Seconds())))
}

// BuildStdin terminates statement with exactly one newline, the way bc
// expects each input line.
func BuildStdin(statement string) string {
	return statement + "\n"
}

// BuildEnvironment renders env as sorted KEY=VALUE entries.
func BuildEnvironment(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	result := make([]string, 0, len(env))
	for key, value := range env {
		result = append(result, key+"="+value)
	}

	sort.Strings(result)

	return result
}
