package validation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/domain"
)

type contextKey string

const violationsKey contextKey = "violations"

// Rule binds a field to a validator tag string such as "required,uuid".
type Rule struct {
	Field string
	Tag   string
}

// Rules is an ordered rule table. Violations are reported in table order.
type Rules []Rule

// RuleSet groups the rules an endpoint applies to its body and its query.
type RuleSet struct {
	Body  Rules
	Query Rules
}

// Empty reports whether the set has no rules at all.
func (s RuleSet) Empty() bool {
	return len(s.Body) == 0 && len(s.Query) == 0
}

// Violation is one failed check on one field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Violations is the full list of failed checks for a request.
type Violations []Violation

// Error implements error.
func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator evaluates rule tables with go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// New creates a Validator with the custom tags registered. "text" accepts
// only strings that are not blank. "bcryptlen" bounds a string by bytes, not
// runes, so every accepted password can be hashed.
func New() *Validator {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"text":      isText,
		"bcryptlen": fitsBcrypt,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
		}
	}
	return &Validator{validate: v}
}

func isText(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.Kind() == reflect.String && strings.TrimSpace(field.String()) != ""
}

func fitsBcrypt(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.Kind() == reflect.String && len(field.String()) <= maxPasswordBytes
}

// Check evaluates rules against data and returns every violation.
func (v *Validator) Check(data map[string]any, rules Rules) Violations {
	if len(rules) == 0 {
		return nil
	}

	table := make(map[string]any, len(rules))
	for _, rule := range rules {
		table[rule.Field] = rule.Tag
	}

	results := v.validate.ValidateMap(data, table)

	var violations Violations
	for _, rule := range rules {
		err, ok := results[rule.Field].(error)
		if !ok {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			violations = append(violations, Violation{
				Field:   rule.Field,
				Rule:    "invalid",
				Message: "is invalid",
				Value:   data[rule.Field],
			})
			continue
		}
		for _, fe := range fieldErrs {
			violations = append(violations, Violation{
				Field:   rule.Field,
				Rule:    fe.Tag(),
				Message: message(fe),
				Value:   data[rule.Field],
			})
		}
	}
	return violations
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "text":
		return "must be a non-empty string"
	case "uuid", "uuid4":
		return "must be a valid ID"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "bcryptlen":
		return fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)
	default:
		return "failed " + fe.Tag()
	}
}

// Stage returns a pipeline stage that decodes the body, stores it in the
// context, evaluates set and records the violations for Reject. It never
// terminates the request itself so authentication still runs first.
func (v *Validator) Stage(set RuleSet) shared.Stage {
	return func(r *http.Request) (*http.Request, *shared.Reply) {
		body, err := shared.DecodeBody(r)
		if err != nil {
			violations := Violations{{
				Field:   "body",
				Rule:    "decode",
				Message: "must be a JSON object or form-encoded",
			}}
			ctx := shared.WithBody(r.Context(), shared.Body{})
			return r.WithContext(withViolations(ctx, violations)), nil
		}

		violations := v.Check(body, set.Body)
		if len(set.Query) > 0 {
			violations = append(violations, v.Check(queryValues(r), set.Query)...)
		}

		ctx := shared.WithBody(r.Context(), body)
		return r.WithContext(withViolations(ctx, violations)), nil
	}
}

// Reject returns the violation reply recorded by Stage, or nil when the
// request passed.
func Reject(r *http.Request, status int) *shared.Reply {
	violations := FromContext(r.Context())
	if len(violations) == 0 {
		return nil
	}
	return shared.FailWith(status, violations, violations)
}

// FromContext returns the violations recorded by Stage.
func FromContext(ctx context.Context) Violations {
	violations, _ := ctx.Value(violationsKey).(Violations)
	return violations
}

func withViolations(ctx context.Context, violations Violations) context.Context {
	return context.WithValue(ctx, violationsKey, violations)
}

func queryValues(r *http.Request) map[string]any {
	query := r.URL.Query()
	values := make(map[string]any, len(query))
	for key := range query {
		values[key] = query.Get(key)
	}
	return values
}

// statusTag lists the accepted transaction statuses for a oneof tag.
func statusTag() string {
	names := make([]string, len(domain.TransactionStatuses))
	for i, s := range domain.TransactionStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, " ")
}
