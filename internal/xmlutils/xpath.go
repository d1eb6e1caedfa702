// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"fjacquet/camt-report/internal/logging"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile loads an XML file and returns the XML root node
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

// LoadXML parses an XML stream into an xmlpath root node.
// Non UTF-8 documents are decoded according to their XML declaration.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	root, err := xmlpath.ParseDecoder(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}
	return root, nil
}

// ExtractFromXML extracts values from an XML node using an XPath expression
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

// MissingPaths returns the expressions among xpaths that match nothing under root
func MissingPaths(root *xmlpath.Node, xpaths ...string) ([]string, error) {
	var missing []string
	for _, xp := range xpaths {
		path, err := xmlpath.Compile(xp)
		if err != nil {
			return nil, fmt.Errorf("failed to compile XPath: %w", err)
		}
		if !path.Exists(root) {
			missing = append(missing, xp)
		}
	}
	return missing, nil
}
