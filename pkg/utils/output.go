package utils

import (
	"io"

	errUtils "github.com/cloudposse/testprune/errors"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	outputFileMode = 0o644
)

// ValidateFormat accepts json and yaml.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return errUtils.Build(errUtils.ErrInvalidFormat).
			WithHintf("'%s' is not supported; use json or yaml", format).
			WithContext("format", format).
			Err()
	}
}

// PrintOrWriteToFile prints data to w in format, or writes it to file when file is set.
func PrintOrWriteToFile(w io.Writer, format string, file string, data any) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	var err error
	switch {
	case file == "" && format == FormatJSON:
		err = PrintAsJSON(w, data)
	case file == "":
		err = PrintAsYAML(w, data)
	case format == FormatJSON:
		err = WriteToFileAsJSON(file, data, outputFileMode)
	default:
		err = WriteToFileAsYAML(file, data, outputFileMode)
	}
	if err != nil {
		return errUtils.Wrap(errUtils.ErrWriteOutput, err, "format=%s", format)
	}
	return nil
}
