package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	jsoniter "github.com/json-iterator/go"
)

const defaultIndent = "  "

// ConvertToJSON encodes data as indented JSON.
func ConvertToJSON(data any) (string, error) {
	j, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(data, "", defaultIndent)
	if err != nil {
		return "", err
	}
	return string(j), nil
}

// PrintAsJSON writes data to w as indented JSON followed by a newline.
func PrintAsJSON(w io.Writer, data any) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, j)
	return err
}

// WriteToFileAsJSON atomically writes data to filePath as indented JSON.
func WriteToFileAsJSON(filePath string, data any, fileMode os.FileMode) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	return renameio.WriteFile(filePath, []byte(j+"\n"), fileMode)
}
