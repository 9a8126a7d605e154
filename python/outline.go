package python

import "github.com/dhamidi/pyqual/project"

// LineElement is an Element together with the 0-based line it was found on.
type LineElement struct {
	Line int
	Element
}

// Outline classifies every line of a document and returns the lines where a
// class, function or top-level constant was detected, in document order.
// The project root is located once for the whole document.
func Outline(lines []string, filePath string) []LineElement {
	modulePath := project.ModulePathFor(filePath)

	var out []LineElement
	for i := range lines {
		e := namesAtLine(lines, i)
		if e.IsZero() {
			continue
		}
		e.ModulePath = modulePath
		out = append(out, LineElement{Line: i, Element: e})
	}
	return out
}
