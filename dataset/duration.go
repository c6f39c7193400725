package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseSeconds converts a wall-clock time cell to seconds. Two shapes are
// accepted: plain seconds ("5.0") and minutes:seconds as printed by
// /usr/bin/time ("1:02.50" is 62.5). Anything else, including a result
// that is not a finite number, is an error.
func ParseSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)

	sec, err := parseSeconds(s)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0, errors.Errorf("invalid time %q: not a finite number", s)
	}
	return sec, nil
}

func parseSeconds(s string) (float64, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		sec, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid time %q", s)
		}
		return sec, nil
	case 2:
		minutes, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid minutes in time %q", s)
		}
		seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid seconds in time %q", s)
		}
		return minutes*60 + seconds, nil
	}

	return 0, errors.Errorf("invalid time %q: expected seconds or minutes:seconds", s)
}
