// =============================================================================
// Huronalytics Site Builder - Sort Keys
// =============================================================================
//
// Chronological ordering for transactions. The offseason runs September
// through March, so a plain month/day compare is wrong across the new year:
// months September and later belong to the opening calendar year, months
// before September to the following one.
//
// Undated entries are special-cased:
//   - A raw or entry text containing an asterisk marks a player who re-signed
//     before free agency; those sort before every dated entry.
//   - Any other undated entry sorts after every dated entry.
//
// =============================================================================

package corpus

import (
	"strconv"
	"strings"

	"github.com/huronalytics/sitebuilder/internal/types"
)

// Season anchor years for the September-through-March window.
const (
	openingYear   = 2025
	followingYear = 2026
)

// Key is a comparable (year, month, day) ordering key.
type Key struct {
	Year  int
	Month int
	Day   int
}

// Sentinel keys for undated entries. reSignedKey sorts before any real
// offseason date, undatedKey after.
var (
	reSignedKey = Key{Year: 1900, Month: 1, Day: 1}
	undatedKey  = Key{Year: 2099, Month: 12, Day: 31}
)

// Before reports whether k orders strictly before other.
func (k Key) Before(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// DateKey maps a transaction to its ascending chronological key. It is a
// pure function: equal transactions always produce equal keys, so subsets
// can be re-sorted deterministically.
func DateKey(t types.Transaction) Key {
	if t.Date == "" {
		if strings.Contains(t.Entry, "*") || strings.Contains(t.Raw, "*") {
			return reSignedKey
		}
		return undatedKey
	}

	year, month, day, ok := splitDate(t.Date)
	if !ok {
		// Malformed dates surviving to this stage are non-fatal.
		return undatedKey
	}
	return Key{Year: year, Month: month, Day: day}
}

// FeedKey is the reverse-feed variant of DateKey: undated and malformed
// entries map to a zero key so that a descending sort pushes them to the
// bottom of the feed.
func FeedKey(t types.Transaction) Key {
	if t.Date == "" {
		return Key{}
	}
	year, month, day, ok := splitDate(t.Date)
	if !ok {
		return Key{}
	}
	return Key{Year: year, Month: month, Day: day}
}

// splitDate parses "M/D" and assigns the offseason year.
func splitDate(date string) (year, month, day int, ok bool) {
	parts := strings.Split(date, "/")
	if len(parts) < 2 {
		return 0, 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false
	}

	year = followingYear
	if month >= 9 {
		year = openingYear
	}
	return year, month, day, true
}
