package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Course codes are letters and digits only, e.g. CSE017 or MATH021
	CourseCodePattern = `^[A-Za-z0-9]+$`

	// CourseCodeMaxLength matches the courses.code column
	CourseCodeMaxLength = 16
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// CourseCodeTag is the struct tag name registered by RegisterRules.
const CourseCodeTag = "coursecode"

// IsCourseCode reports whether s is a well-formed course code.
func IsCourseCode(s string) bool {
	return len(s) <= CourseCodeMaxLength && CompiledPatterns.CourseCode.MatchString(s)
}

// RegisterRules adds the custom tags to a validator instance. gin's binding
// validator and the catalog loader both call it.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(CourseCodeTag, func(fl validator.FieldLevel) bool {
		return IsCourseCode(fl.Field().String())
	})
}
