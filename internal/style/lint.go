// SPDX-License-Identifier: MIT
package style

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Issue is a non-fatal problem found in a model. Generation still succeeds;
// the issue only explains why the output may look wrong.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	cssFuncPattern  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([^()]*\)$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			return name
		})
		_ = v.RegisterValidation("cssColor", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return hexColorPattern.MatchString(s) || cssFuncPattern.MatchString(s) || s == "transparent"
		})
		validateInst = v
	})
	return validateInst
}

// Lint reports best-effort problems with m: malformed colors, unknown enum
// values and out-of-range numbers.
func Lint(m Model) []Issue {
	var issues []Issue

	if err := validatorInstance().Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []Issue{{Rule: "internal", Message: err.Error()}}
		}
		for _, fe := range verrs {
			issues = append(issues, Issue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: describe(fe),
			})
		}
	}

	if m.Icon.Kind == IconKindLibrary {
		if _, ok := IconMarkup(m.Icon.Key); !ok {
			issues = append(issues, Issue{Field: "icon", Rule: "library", Message: fmt.Sprintf("unknown icon %q renders nothing", m.Icon.Key)})
		}
	}
	if m.Icon.Kind == IconKindCustom && !strings.Contains(m.Icon.SVG, "<svg") {
		issues = append(issues, Issue{Field: "icon", Rule: "svg", Message: "custom icon markup has no <svg> element"})
	}
	return issues
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "cssColor":
		return fmt.Sprintf("%q is not a hex color; it is passed through as-is", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]; the neutral default is used", fe.Value(), fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s; the default is used", fe.Param())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
