package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// semver holds the numeric core of a release tag. Pre-release and build
// suffixes are dropped.
type semver [3]int

func parseSemver(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q: want major.minor.patch", s)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("version %q: bad component %q", s, p)
		}
		v[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	diff, found := lo.Find(lo.Zip2(av[:], bv[:]), func(pair lo.Tuple2[int, int]) bool {
		return pair.A != pair.B
	})
	if !found {
		return 0, nil
	}

	if diff.A > diff.B {
		return 1, nil
	}
	return -1, nil
}
