package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the library's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldMessageType = "message_type"
	FieldElement     = "element"
	FieldPath        = "path"
	FieldCode        = "code"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldCount       = "count"
	FieldProfile     = "profile"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
