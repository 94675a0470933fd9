package utils

import (
	"bytes"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const DefaultYAMLIndent = 2

// ConvertToYAML encodes data as YAML with two-space indentation.
func ConvertToYAML(data any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(DefaultYAMLIndent)
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrintAsYAML writes data to w as YAML.
func PrintAsYAML(w io.Writer, data any) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, y)
	return err
}

// WriteToFileAsYAML atomically writes data to filePath as YAML.
func WriteToFileAsYAML(filePath string, data any, fileMode os.FileMode) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	return renameio.WriteFile(filePath, []byte(y), fileMode)
}
