// Package xmlutils provides XPath helpers used for message type detection
// and lightweight field extraction without a full document decode.
package xmlutils

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXML parses XML from a reader and returns the root node.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// LoadXMLFile loads an XML file and returns the root node.
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return LoadXML(file)
}

// Exists reports whether an XPath expression matches anything under root.
// Note that xmlpath matches local element names, which is what we want for
// namespaced ISO 20022 documents.
func Exists(root *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(root), nil
}

// ExtractFromXML extracts values from an XML node using an XPath expression.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// GetOrEmpty returns the value at the specified index in a slice, or an
// empty string if the index is out of bounds.
func GetOrEmpty(slice []string, index int) string {
	if index < len(slice) {
		return slice[index]
	}
	return ""
}
