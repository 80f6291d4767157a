package blogscan

import (
	"fmt"
	"strings"
)

// FormatReports formats site reports for display.
// Each site gets a header followed by its numbered articles.
// Reports are separated by blank lines.
func FormatReports(reports []*SiteReport) string {
	if len(reports) == 0 {
		return ""
	}

	parts := make([]string, 0, len(reports))
	for _, r := range reports {
		var b strings.Builder
		b.WriteString(r.Site.Name + " Articles:")
		switch {
		case r.Err != nil:
			b.WriteString("\n  error: " + r.Err.Error())
		case len(r.Articles) == 0:
			b.WriteString("\n  (no articles)")
		}
		for i, a := range r.Articles {
			fmt.Fprintf(&b, "\n  %d. %s\n     %s", i+1, a.Title, a.URL)
			if a.HasDescription() {
				b.WriteString("\n     " + a.Description)
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
