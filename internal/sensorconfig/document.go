package sensorconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// ReservedSection holds the gateway-wide settings and is never a sensor.
const ReservedSection = "CONFIG"

// loadOptions mirrors the original file dialect: "#" and ";" start an inline
// comment only after whitespace, so "s3cr#t" stays a value. Keys are
// case-insensitive while section names are not.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:          true,
	SpaceBeforeInlineComment: true,
}

// newDocument returns an empty document with the store's parse options.
func newDocument() *ini.File {
	return ini.Empty(loadOptions)
}

// parseDocument parses INI text from a path or byte slice.
func parseDocument(source interface{}) (*ini.File, error) {
	doc, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// isSensorSection reports whether a section describes a sensor. The parser's
// implicit DEFAULT section is excluded along with CONFIG.
func isSensorSection(name string) bool {
	return name != ReservedSection && name != ini.DefaultSection
}

// sensorSections returns the sensor sections in file order.
func sensorSections(doc *ini.File) []*ini.Section {
	var sections []*ini.Section
	for _, section := range doc.Sections() {
		if isSensorSection(section.Name()) {
			sections = append(sections, section)
		}
	}
	return sections
}

// hasSection reports whether the document contains the named section.
func hasSection(doc *ini.File, name string) bool {
	_, err := doc.GetSection(name)
	return err == nil
}

// writeDocument serializes the document to path through a temporary file
// and a rename, so readers never see a half-written file.
func writeDocument(doc *ini.File, path string) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}
