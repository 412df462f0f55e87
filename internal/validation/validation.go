// Package validation implements the recursive validation framework shared by
// all generated MX message types. Every generated type implements Validator;
// validation walks the message tree, appending each violation it finds to an
// ErrorCollector instead of stopping at the first one.
package validation

// Validator is implemented by every message type. Validate inspects the
// receiver and appends any violations to coll. path identifies the
// receiver's location in the message tree ("" for the root).
type Validator interface {
	Validate(path string, cfg *ParserConfig, coll *ErrorCollector)
}

// ChildPath joins a parent path and a field name with a dot. An empty parent
// yields the field name alone, so roots validated with path "" produce
// "GrpHdr.MsgId" rather than ".GrpHdr.MsgId".
func ChildPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}
