package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Fields the validator knows about, in payload order.
var numericFields = []string{
	"smoothness",
	"time_score",
	"final_score",
	"duration",
	"left_smoothness",
	"right_smoothness",
}

// Issues collects validation failures per field. A nil/empty Issues
// means the input passed.
type Issues map[string][]string

func (i Issues) add(field, message string) {
	i[field] = append(i[field], message)
}

// Error implements the error interface so Issues can travel through
// error-shaped plumbing when needed.
func (i Issues) Error() string {
	if len(i) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(i))
	for field, messages := range i {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return strings.Join(parts, "; ")
}

// singleton validator instance, initialized once (thread-safe)
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report field names as their json tags so issues match the
		// wire format clients sent.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks an arbitrary decoded JSON object against the session
// schema and returns either a fully-typed payload or the complete set
// of per-field issues. It always inspects every field in one pass so
// clients see everything that is wrong, not just the first problem.
//
// String fields must be present, strings, and non-empty. Numeric fields
// accept a JSON number or a numeric string ("0.82"); anything else is
// an issue. Pure function, no store interaction.
func Validate(input map[string]any) (Payload, Issues) {
	issues := Issues{}

	var p Payload
	p.SessionID = stringField(input, "session_id", issues)
	p.Date = stringField(input, "date", issues)

	targets := map[string]*float64{
		"smoothness":       &p.Smoothness,
		"time_score":       &p.TimeScore,
		"final_score":      &p.FinalScore,
		"duration":         &p.Duration,
		"left_smoothness":  &p.LeftSmoothness,
		"right_smoothness": &p.RightSmoothness,
	}
	for _, field := range numericFields {
		value, ok := input[field]
		if !ok {
			issues.add(field, field+" is required")
			continue
		}
		f, err := Coerce(value)
		if err != nil {
			issues.add(field, field+" must be a number")
			continue
		}
		*targets[field] = f
	}

	if err := getValidator().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				issues.add(fe.Field(), fe.Field()+" is required")
			}
		} else {
			issues.add("payload", "payload is invalid")
		}
	}

	if len(issues) > 0 {
		return Payload{}, issues
	}
	return p, nil
}

// stringField pulls a required string out of the input. Absent or empty
// values are left for the struct validator's required check so the
// issue set stays consistent.
func stringField(input map[string]any, name string, issues Issues) string {
	value, ok := input[name]
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		issues.add(name, name+" must be a string")
		return ""
	}
	return s
}

// Coerce converts a decoded JSON value into a finite float64. Unlike
// Normalize it refuses anything unparseable: the write path fails loud.
func Coerce(value any) (float64, error) {
	var f float64
	var err error

	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return 0, fmt.Errorf("cannot coerce %T to a number", value)
	}
	if err != nil {
		return 0, fmt.Errorf("cannot coerce %q to a number: %w", value, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not a finite number", f)
	}
	return f, nil
}
