package main

import (
	"fmt"

	"folderize/internal/report"
)

const statusIndent = "  "

func renderStatusLine(label string, passed bool, message string, colorize bool) string {
	statusText, kind := "[ERROR]", report.KindFailure
	if passed {
		statusText, kind = "[OK]", report.KindSuccess
	}
	if message != "" {
		statusText += " " + message
	}
	line := fmt.Sprintf("%s%s: %s", statusIndent, label, statusText)
	if colorize {
		return report.Colorize(kind, line)
	}
	return line
}
