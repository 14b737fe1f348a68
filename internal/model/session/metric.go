package session

import (
	"database/sql/driver"
	"math"
	"strconv"
	"strings"
)

// Metric is a session measurement as read back from the store. Older
// rows (and some drivers) hand numeric columns back as strings or
// NULLs; scanning normalizes all of that to a plain number so the read
// path never breaks rendering.
//
// This is deliberately the opposite of the write path: Validate rejects
// unparseable input loudly, Scan degrades it silently to 0. The two
// must stay separate — folding them together would either let bad
// writes through with zeroed fields or make legacy NULL rows fail every
// list call. Whether 0 means "zero" or "unknown" for such rows is an
// open question with the clinical side; until that settles, the
// defaulting lives only here.
type Metric float64

// Scan implements sql.Scanner. It never returns an error.
func (m *Metric) Scan(value any) error {
	*m = Metric(Normalize(value))
	return nil
}

// Value implements driver.Valuer.
func (m Metric) Value() (driver.Value, error) {
	return float64(m), nil
}

// Normalize coerces a stored numeric representation (number, numeric
// string, or NULL) to a float64. Unparseable values come back as 0.
func Normalize(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		return parseOrZero(string(v))
	case string:
		return parseOrZero(v)
	default:
		return 0
	}
}

func parseOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}
