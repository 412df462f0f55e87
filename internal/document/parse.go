package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"openclear/mx-message/internal/parsererror"
)

// Parse decodes a Document envelope from a reader. The message type is
// taken from the root element inside the envelope; an envelope carrying no
// recognised message body is an error.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &parsererror.ParseError{Err: err}
	}
	return ParseBytes(data)
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &parsererror.ParseError{Err: err}
	}
	if doc.Empty() {
		return nil, &parsererror.UnknownMessageTypeError{Element: rootElementName(data)}
	}
	return &doc, nil
}

// ParseFile decodes a Document envelope from a file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parsererror.ParseError{File: path, Err: err}
	}
	doc, err := ParseBytes(data)
	if err != nil {
		if perr, ok := err.(*parsererror.ParseError); ok {
			perr.File = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseAppHeader decodes a Business Application Header from a reader.
func ParseAppHeader(r io.Reader) (*AppHeader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &parsererror.ParseError{Err: err}
	}
	var hdr AppHeader
	if err := xml.Unmarshal(data, &hdr); err != nil {
		return nil, &parsererror.ParseError{Err: err}
	}
	return &hdr, nil
}

// MarshalAppHeader renders a Business Application Header to indented XML
// with the standard header.
func MarshalAppHeader(hdr *AppHeader) ([]byte, error) {
	if hdr.Namespace == "" {
		hdr.Namespace = AppHeaderNamespace
	}
	body, err := xml.MarshalIndent(hdr, "", "    ")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Marshal renders a document back to indented XML with the standard header.
func Marshal(doc *Document) ([]byte, error) {
	if doc.Namespace == "" && doc.MessageType() != "" {
		doc.Namespace = Namespace(doc.MessageType())
	}
	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
