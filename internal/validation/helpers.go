package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"openclear/mx-message/internal/parsererror"
)

// Compiled pattern cache. The generated types reuse a small set of schema
// patterns, so each one compiles once per process.
var (
	patternMu    sync.RWMutex
	patternCache = make(map[string]*regexp.Regexp)
)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternMu.RLock()
	re, ok := patternCache[pattern]
	patternMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	patternMu.Lock()
	patternCache[pattern] = re
	patternMu.Unlock()
	return re, nil
}

// ValidateLength checks that value has between min and max characters
// (runes, not bytes). A zero min or max means that bound is not checked.
// It reports whether the value is valid.
func ValidateLength(value, field string, min, max int, path string, cfg *ParserConfig, coll *ErrorCollector) bool {
	valid := true
	n := utf8.RuneCountInString(value)

	if min > 0 && n < min {
		err := parsererror.NewValidationError(
			parsererror.CodeMinLength,
			fmt.Sprintf("%s is shorter than the minimum length of %d", field, min),
		).WithField(field).WithPath(path)

		if cfg.FailFast {
			coll.AddCriticalError(err)
			return false
		}
		coll.AddError(err)
		valid = false
	}

	if max > 0 && n > max {
		err := parsererror.NewValidationError(
			parsererror.CodeMaxLength,
			fmt.Sprintf("%s exceeds the maximum length of %d", field, max),
		).WithField(field).WithPath(path)

		if cfg.FailFast {
			coll.AddCriticalError(err)
			return false
		}
		coll.AddError(err)
		valid = false
	}

	return valid
}

// ValidatePattern checks value against a schema regex. The value is trimmed
// of surrounding whitespace first and the match is unanchored, mirroring the
// schema profile's facet semantics. A pattern that does not compile records
// a critical error.
func ValidatePattern(value, field, pattern, path string, cfg *ParserConfig, coll *ErrorCollector) bool {
	trimmed := strings.TrimSpace(value)

	re, err := compilePattern(pattern)
	if err != nil {
		coll.AddCriticalError(parsererror.NewValidationError(
			parsererror.CodeCritical,
			fmt.Sprintf("Invalid regex pattern for %s: %s", field, pattern),
		).WithField(field).WithPath(path))
		return false
	}

	if !re.MatchString(trimmed) {
		verr := parsererror.NewValidationError(
			parsererror.CodePattern,
			fmt.Sprintf("%s does not match the required pattern (value: '%s')", field, value),
		).WithField(field).WithPath(path)

		if cfg.FailFast {
			coll.AddCriticalError(verr)
		} else {
			coll.AddError(verr)
		}
		return false
	}

	return true
}

// ValidateRequired checks that a mandatory element is present. present is
// typically a pointer-nil check at the call site. A missing required element
// is always critical.
func ValidateRequired(present bool, field, path string, _ *ParserConfig, coll *ErrorCollector) bool {
	if !present {
		coll.AddCriticalError(parsererror.NewValidationError(
			parsererror.CodeRequired,
			fmt.Sprintf("%s is required", field),
		).WithField(field).WithPath(path))
		return false
	}
	return true
}
