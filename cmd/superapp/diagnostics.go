// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/superapp-labs/superapp/internal/discovery"
	"github.com/superapp-labs/superapp/internal/issue"
	"github.com/superapp-labs/superapp/pkg/manifest"
)

// renderDiagnostics writes structured discovery diagnostics to stderr with
// lipgloss styling.
func renderDiagnostics(stderr io.Writer, diags []discovery.Diagnostic) {
	for _, diag := range diags {
		prefix := WarningStyle.Render("warning")
		if diag.Severity == discovery.SeverityError {
			prefix = ErrorStyle.Render("error")
		}

		if diag.Path != "" {
			_, _ = fmt.Fprintf(stderr, "%s: %s (%s)\n", prefix, diag.Message, diag.Path)
			continue
		}

		_, _ = fmt.Fprintf(stderr, "%s: %s\n", prefix, diag.Message)
	}
}

// renderDiagnosticCards renders the issue catalog card matching each
// diagnostic, at most once per card, after the diagnostic lines themselves.
func renderDiagnosticCards(stderr io.Writer, diags []discovery.Diagnostic) {
	seen := make(map[issue.Id]bool)
	for _, diag := range diags {
		id := issueForDiagnostic(diag)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		renderIssueCard(stderr, id)
	}
}

// issueForDiagnostic maps a discovery diagnostic to its help card. Parse
// failures caused only by route-key convention violations get the dedicated
// route-key card; anything else in that category gets the generic one.
func issueForDiagnostic(diag discovery.Diagnostic) issue.Id {
	switch diag.Code {
	case discovery.CodeManifestParseFailed:
		var verrs manifest.ValidationErrors
		if errors.As(diag.Cause, &verrs) && allRouteKeyErrors(verrs) {
			return issue.InvalidRouteKeyId
		}
		return issue.ManifestParseErrorId
	case discovery.CodeDuplicatePluginName:
		return issue.DuplicatePluginNameId
	default:
		return 0
	}
}

func allRouteKeyErrors(verrs manifest.ValidationErrors) bool {
	for _, verr := range verrs {
		if !strings.HasPrefix(verr.Field, "routes[") {
			return false
		}
	}
	return len(verrs) > 0
}

// renderIssueCard renders an issue catalog entry to stderr. Rendering
// failures are logged and otherwise ignored; the card is help text, not the
// error itself.
func renderIssueCard(stderr io.Writer, id issue.Id) {
	catalogEntry := issue.Get(id)
	if catalogEntry == nil {
		return
	}

	rendered, err := catalogEntry.Render("dark")
	if err != nil {
		logger.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	_, _ = fmt.Fprint(stderr, rendered)
}
