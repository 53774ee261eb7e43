package importer

import "strings"

// ParseCSV splits text on newlines and every line on commas. There is no
// header handling, quoting or arity check: a trailing newline yields a
// trailing row holding one empty field, and fields containing commas or
// newlines are split.
func ParseCSV(content string) [][]string {
	lines := strings.Split(content, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, ",")
	}
	return rows
}

// FormatCSVRows is the inverse of ParseCSV: fields are joined with commas and
// rows with newlines, without quoting and without a trailing newline.
func FormatCSVRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, fields := range rows {
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\n")
}
