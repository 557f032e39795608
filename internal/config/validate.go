package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates an issue that blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates an issue surfaced to the user without
	// blocking execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into
// the config (e.g. "sources.orders.format"); Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static checks over a decoded Config and returns the list
// of findings. It does not touch the filesystem; missing files surface at
// extract time as fatal errors. Callers decide whether warnings block.
func Validate(c Config) []Issue {
	var issues []Issue

	names := []string{"representatives", "clients", "products", "orders", "order_items"}
	for i, s := range c.sourceRefs() {
		path := "sources." + names[i]
		if strings.TrimSpace(s.Path) == "" {
			issues = append(issues, Issue{SeverityError, path + ".path", "path is required"})
		}
		switch s.Format {
		case FormatCSV, FormatExcel:
		default:
			issues = append(issues, Issue{SeverityError, path + ".format",
				fmt.Sprintf("unknown format %q (expected %q or %q)", s.Format, FormatCSV, FormatExcel)})
		}
		if s.Format == FormatExcel && s.Encoding != "" {
			issues = append(issues, Issue{SeverityWarning, path + ".encoding",
				"encoding is ignored for excel sources"})
		}
	}

	if strings.TrimSpace(c.Storage.Kind) == "" {
		issues = append(issues, Issue{SeverityError, "storage.kind", "kind is required"})
	}
	if strings.TrimSpace(c.Storage.DSN) == "" {
		issues = append(issues, Issue{SeverityError, "storage.dsn", "dsn is required"})
	}

	return issues
}
