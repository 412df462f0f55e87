package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"openclear/mx-message/internal/parsererror"
	"openclear/mx-message/internal/xmlutils"
)

// DetectMessageType probes the XML structure and returns the short form of
// the message type it finds, without decoding the whole document. It
// understands both a Document envelope and a bare message root element, and
// recognises a standalone AppHdr as "head.001".
func DetectMessageType(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &parsererror.ParseError{Err: err}
	}
	return DetectMessageTypeBytes(data)
}

// DetectMessageTypeBytes is DetectMessageType over a byte slice.
func DetectMessageTypeBytes(data []byte) (string, error) {
	root, err := xmlutils.LoadXML(bytes.NewReader(data))
	if err != nil {
		return "", &parsererror.ParseError{Err: err}
	}

	for _, info := range messageRegistry {
		for _, xpath := range []string{"/Document/" + info.ElementName, "/" + info.ElementName} {
			ok, err := xmlutils.Exists(root, xpath)
			if err != nil {
				return "", err
			}
			if ok {
				return info.ShortForm, nil
			}
		}
	}

	ok, err := xmlutils.Exists(root, "/AppHdr")
	if err != nil {
		return "", err
	}
	if ok {
		return "head.001", nil
	}

	return "", &parsererror.UnknownMessageTypeError{Element: rootElementName(data)}
}

// DetectMessageTypeFile opens and probes a file.
func DetectMessageTypeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &parsererror.ParseError{File: path, Err: err}
	}
	defer f.Close()
	return DetectMessageType(f)
}

// rootElementName returns the local name of the first start element, for
// error reporting only.
func rootElementName(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local
		}
	}
}
