package importer

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported import format")

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// DetectFormat picks the format from the file name, then the content type.
// Anything text-like is treated as CSV.
func DetectFormat(filename, contentType string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "" {
		return FormatCSV, nil
	}

	switch {
	case mediaType == xlsxContentType:
		return FormatXLSX, nil
	case strings.HasPrefix(mediaType, "text/"), mediaType == "application/octet-stream":
		return FormatCSV, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Parse reads the whole upload and converts it to rows.
func Parse(format Format, r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return ParseCSV(string(data)), nil
	case FormatXLSX:
		return ParseSpreadsheet(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedFormat
	}
}
