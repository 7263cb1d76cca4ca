package vars

import (
	"fmt"
	"strconv"
	"strings"
)

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func FirstNonEmpty[T any](values ...[]T) []T {
	for _, value := range values {
		if len(value) > 0 {
			return value
		}
	}
	return nil
}

func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}

// StrToInts parses a comma separated list like "9,8,7".
func StrToInts(str string) ([]int64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, nil
	}
	var ret []int64
	for part := range strings.SplitSeq(str, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("convert %q to int list: %w", str, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
