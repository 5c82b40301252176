package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/parkmeter/internal/errors"
	"github.com/rileyhilliard/parkmeter/internal/tier"
)

// ParseDurationFlag parses a duration flag. Returns zero duration if the flag is empty.
func ParseDurationFlag(name, flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", flag, name),
			"Try something like 4s, 1m, or 500ms.")
	}
	if duration <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("--%s must be positive, got %s", name, flag),
			"Try something like 4s, 1m, or 500ms.")
	}
	return duration, nil
}

// ParseMinute parses a minute of the day given as a plain number ("375") or
// as a clock time ("06:15").
func ParseMinute(s string) (int, error) {
	s = strings.TrimSpace(s)

	var minute int
	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err1 := strconv.Atoi(h)
		mins, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || mins < 0 || mins >= 60 {
			return 0, badMinute(s)
		}
		minute = hours*60 + mins
	} else {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, badMinute(s)
		}
		minute = n
	}

	if minute < 0 || minute >= tier.MinutesPerDay {
		return 0, badMinute(s)
	}
	return minute, nil
}

func badMinute(s string) error {
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a minute of the day", s),
		fmt.Sprintf("Use a number from 0 to %d, or a time like 06:15.", tier.MinutesPerDay-1))
}
