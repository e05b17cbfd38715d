// Package validation declares per-route field rules and evaluates them
// against a request's path parameters and JSON body.
package validation

import (
	"sort"
)

// Location says where a rule looks up its field.
type Location string

const (
	InParams Location = "params"
	InBody   Location = "body"
)

// Error item types.
const (
	TypeField        = "field"
	TypeUnknownField = "unknown_field"
	TypeBody         = "body"
)

// Predicate reports whether a field value satisfies a constraint.
type Predicate func(value any) bool

// Check pairs a predicate with the message reported when it does not hold.
type Check struct {
	Holds   Predicate
	Message string
}

// Rule is the ordered list of checks applied to one field.
type Rule struct {
	Field    string
	Location Location
	Checks   []Check
}

// Param declares a rule on a path parameter.
func Param(name string, checks ...Check) Rule {
	return Rule{Field: name, Location: InParams, Checks: checks}
}

// Body declares a rule on a top-level JSON body field.
func Body(name string, checks ...Check) Rule {
	return Rule{Field: name, Location: InBody, Checks: checks}
}

// Input is what a rule set is evaluated against.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

// FieldError is one entry of the "errors" array returned to clients.
type FieldError struct {
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path,omitempty"`
	Location Location `json:"location,omitempty"`
}

// RuleSet is everything that must hold before a route's handler runs.
type RuleSet struct {
	Rules []Rule
	// ExactBody rejects body fields no rule mentions.
	ExactBody bool
}

// ReadsBody reports whether the request body has to be decoded for s.
func (s RuleSet) ReadsBody() bool {
	if s.ExactBody {
		return true
	}
	for _, rule := range s.Rules {
		if rule.Location == InBody {
			return true
		}
	}
	return false
}

// Validate runs every check of every rule in declaration order and returns
// the failures. A failing check does not stop later checks on the same field.
// Unknown body fields, when rejected, are reported after all rule failures.
func (s RuleSet) Validate(in Input) []FieldError {
	errs := make([]FieldError, 0)
	for _, rule := range s.Rules {
		value := rule.lookup(in)
		for _, check := range rule.Checks {
			if check.Holds(value) {
				continue
			}
			errs = append(errs, FieldError{
				Type:     TypeField,
				Value:    value,
				Msg:      check.Message,
				Path:     rule.Field,
				Location: rule.Location,
			})
		}
	}
	if s.ExactBody {
		errs = append(errs, s.unknownFields(in.Body)...)
	}
	return errs
}

// InvalidBody is the single error reported when the body is not a JSON object.
func InvalidBody() FieldError {
	return FieldError{Type: TypeBody, Msg: MsgInvalidBody, Location: InBody}
}

func (r Rule) lookup(in Input) any {
	switch r.Location {
	case InParams:
		return in.Params[r.Field]
	case InBody:
		return in.Body[r.Field]
	}
	return nil
}

func (s RuleSet) unknownFields(body map[string]any) []FieldError {
	known := make(map[string]bool, len(s.Rules))
	for _, rule := range s.Rules {
		if rule.Location == InBody {
			known[rule.Field] = true
		}
	}

	unknown := make([]string, 0)
	for field := range body {
		if !known[field] {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)

	errs := make([]FieldError, 0, len(unknown))
	for _, field := range unknown {
		errs = append(errs, FieldError{
			Type:     TypeUnknownField,
			Value:    body[field],
			Msg:      MsgUnknownField,
			Path:     field,
			Location: InBody,
		})
	}
	return errs
}
