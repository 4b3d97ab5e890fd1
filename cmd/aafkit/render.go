package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	fieldLabelWidth = 22
	fieldIndent     = "  "
)

func renderSectionHeader(title string) string {
	return fmt.Sprintf("== %s ==", strings.TrimSpace(title))
}

func renderField(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return fmt.Sprintf("%s%-*s %s", fieldIndent, fieldLabelWidth, label+":", value)
}

// section writes a titled block of label/value rows.
type section struct {
	title string
	rows  [][2]string
}

func (s *section) add(label, value string) {
	s.rows = append(s.rows, [2]string{label, value})
}

func writeSections(w io.Writer, sections ...section) {
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, renderSectionHeader(s.title))
		for _, row := range s.rows {
			fmt.Fprintln(w, renderField(row[0], row[1]))
		}
	}
}
