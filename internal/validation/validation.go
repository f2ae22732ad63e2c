package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"netanyaRelay/internal/domain"
	pv "netanyaRelay/pkg/validator"
)

type Kind string

const (
	KindMissing    Kind = "missing"
	KindWrongType  Kind = "wrong_type"
	KindOutOfRange Kind = "out_of_range"
)

// Violation is one field-level problem, Field is the dotted json path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    Kind   `json:"type"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, fmt.Sprintf("%s (%s)", v.Field, v.Kind))
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Fields lists the offending paths in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Field
	}
	return out
}

// requiredFields are checked first and reported first; the ticketing handler
// refuses incidents without them.
var requiredFields = []struct {
	path string
	get  func(*domain.IncidentSubmission) string
}{
	{"user_data.first_name", func(s *domain.IncidentSubmission) string { return s.UserData.FirstName }},
	{"user_data.last_name", func(s *domain.IncidentSubmission) string { return s.UserData.LastName }},
	{"user_data.phone", func(s *domain.IncidentSubmission) string { return s.UserData.Phone }},
	{"street.house_number", func(s *domain.IncidentSubmission) string { return s.Street.HouseNumber }},
}

// Validate checks a decoded submission and returns *ValidationError when any
// rule fails.
func Validate(sub *domain.IncidentSubmission) error {
	if sub == nil {
		return &ValidationError{Violations: []Violation{{Field: "body", Message: "submission is required", Kind: KindMissing}}}
	}

	var out []Violation
	seen := make(map[string]bool)
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.get(sub)) == "" {
			out = append(out, Violation{Field: rf.path, Message: "field is required", Kind: KindMissing})
			seen[rf.path] = true
		}
	}

	err := pv.ValidateStruct(sub)
	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return fmt.Errorf("validate submission: %w", err)
	}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, fromFieldError(path, fe))
	}

	if len(out) == 0 {
		return nil
	}
	return &ValidationError{Violations: out}
}

// FromDecodeError turns a json type mismatch into a wrong_type violation.
// Syntax errors and anything else are not field-level and return false.
func FromDecodeError(err error) (*ValidationError, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil, false
	}
	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return &ValidationError{Violations: []Violation{{
		Field:   field,
		Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		Kind:    KindWrongType,
	}}}, true
}

func fromFieldError(path string, fe validator.FieldError) Violation {
	switch fe.Tag() {
	case "required", "notblank":
		return Violation{Field: path, Message: "field is required", Kind: KindMissing}
	case "email":
		return Violation{Field: path, Message: "must be a valid email address", Kind: KindOutOfRange}
	case "max":
		return Violation{Field: path, Message: "must be at most " + fe.Param() + " characters", Kind: KindOutOfRange}
	case "gte", "min":
		return Violation{Field: path, Message: "must be at least " + fe.Param(), Kind: KindOutOfRange}
	default:
		return Violation{Field: path, Message: "failed rule " + fe.Tag(), Kind: KindOutOfRange}
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
