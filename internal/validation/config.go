package validation

// ParserConfig controls how strictly a message tree is validated.
type ParserConfig struct {
	// FailFast records the first violation as critical and makes the
	// helpers report failure immediately.
	FailFast bool
	// ValidateOptionalFields controls whether validation recurses into
	// optional composite elements that are present. Optional scalar fields
	// are always checked when present.
	ValidateOptionalFields bool
	// CollectAllErrors keeps walking the tree after errors are found.
	CollectAllErrors bool
}

// DefaultConfig returns the standard configuration: collect every error in
// the whole tree, optional elements included.
func DefaultConfig() *ParserConfig {
	return &ParserConfig{
		FailFast:               false,
		ValidateOptionalFields: true,
		CollectAllErrors:       true,
	}
}

// FailFastConfig returns a configuration that stops at the first violation.
func FailFastConfig() *ParserConfig {
	return &ParserConfig{
		FailFast:               true,
		ValidateOptionalFields: true,
		CollectAllErrors:       false,
	}
}

// LenientConfig returns a configuration that skips optional composite
// elements entirely.
func LenientConfig() *ParserConfig {
	return &ParserConfig{
		FailFast:               false,
		ValidateOptionalFields: false,
		CollectAllErrors:       false,
	}
}
