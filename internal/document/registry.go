package document

// MessageTypeInfo describes one supported message definition.
type MessageTypeInfo struct {
	// ShortForm is the business name, e.g. "pacs.008".
	ShortForm string
	// FullForm carries the variant and version, e.g. "pacs.008.001.08".
	FullForm string
	// ElementName is the XML root element under the Document envelope.
	ElementName string
}

// Registry of the supported message definitions.
var messageRegistry = []MessageTypeInfo{
	{ShortForm: "pacs.008", FullForm: "pacs.008.001.08", ElementName: "FIToFICstmrCdtTrf"},
	{ShortForm: "pacs.003", FullForm: "pacs.003.001.08", ElementName: "FIToFICstmrDrctDbt"},
	{ShortForm: "camt.057", FullForm: "camt.057.001.06", ElementName: "NtfctnToRcv"},
	{ShortForm: "camt.108", FullForm: "camt.108.001.01", ElementName: "ChqCxlOrStopReq"},
}

const namespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// AppHeaderNamespace is the namespace of the Business Application Header.
const AppHeaderNamespace = namespacePrefix + "head.001.001.02"

// SupportedTypes returns the registry entries in declaration order.
func SupportedTypes() []MessageTypeInfo {
	out := make([]MessageTypeInfo, len(messageRegistry))
	copy(out, messageRegistry)
	return out
}

func lookup(messageType string) (MessageTypeInfo, bool) {
	for _, info := range messageRegistry {
		if messageType == info.ShortForm || messageType == info.FullForm {
			return info, true
		}
	}
	return MessageTypeInfo{}, false
}

// Namespace returns the namespace URI for a message type, accepting either
// the short or the full form. Unknown types fall back to prefixing the
// given type unchanged.
func Namespace(messageType string) string {
	if info, ok := lookup(messageType); ok {
		return namespacePrefix + info.FullForm
	}
	return namespacePrefix + messageType
}

// NormalizeMessageType converts a message type to its short form, e.g.
// "pacs.008.001.08" to "pacs.008". Unknown types are returned unchanged.
func NormalizeMessageType(messageType string) string {
	if info, ok := lookup(messageType); ok {
		return info.ShortForm
	}
	return messageType
}

// ElementToMessageType maps an XML root element name to the short form of
// its message type.
func ElementToMessageType(elementName string) (string, bool) {
	for _, info := range messageRegistry {
		if info.ElementName == elementName {
			return info.ShortForm, true
		}
	}
	return "", false
}

// MessageTypeToElement maps a message type (short or full form) to its XML
// root element name.
func MessageTypeToElement(messageType string) (string, bool) {
	if info, ok := lookup(messageType); ok {
		return info.ElementName, true
	}
	return "", false
}

// FullForm resolves a message type (short or full form) to its full form.
func FullForm(messageType string) (string, bool) {
	if info, ok := lookup(messageType); ok {
		return info.FullForm, true
	}
	return "", false
}
