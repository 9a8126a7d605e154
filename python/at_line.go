package python

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dhamidi/pyqual/project"
)

var (
	// classPattern and funcPattern are unanchored: "class Foo" anywhere on
	// the line counts.
	classPattern = regexp.MustCompile(`class\s+(\w+)`)
	funcPattern  = regexp.MustCompile(`def\s+(\w+)`)

	// constPattern only matches assignments starting at column 0.
	constPattern = regexp.MustCompile(`^(\w+)\s*=`)
)

// indentWidth is one indentation level in space-indented files.
const indentWidth = 4

// ElementAtLine classifies the given line of a Python document and derives
// the module path of filePath from its project root.
//
// The classification is purely lexical. A function line without a class on
// the same line is attributed to the nearest class above it whose
// indentation is exactly one level shallower (4 spaces or 1 tab). Class lines
// at other indentations are skipped, not treated as scope boundaries.
//
// A line index outside the document is treated as an empty line.
func ElementAtLine(lines []string, line int, filePath string) Element {
	e := namesAtLine(lines, line)
	e.ModulePath = project.ModulePathFor(filePath)
	return e
}

// namesAtLine is ElementAtLine without the module path.
func namesAtLine(lines []string, line int) Element {
	var e Element
	if line < 0 || line >= len(lines) {
		return e
	}
	text := lines[line]

	e.ClassName = firstGroup(classPattern, text)
	e.MethodName = firstGroup(funcPattern, text)
	e.ConstantName = firstGroup(constPattern, text)

	if e.MethodName != "" && e.ClassName == "" {
		e.ClassName = enclosingClass(lines, line)
	}
	return e
}

// enclosingClass scans upward from line for the class that owns the
// function defined on it.
func enclosingClass(lines []string, line int) string {
	fn := lines[line]
	currentIndent := indentOf(fn)

	for i := line - 1; i >= 0; i-- {
		name := firstGroup(classPattern, lines[i])
		if name == "" {
			continue
		}
		classIndent := indentOf(lines[i])
		if currentIndent == classIndent+indentWidth {
			return name
		}
		if currentIndent == classIndent+1 && fn[classIndent] == '\t' {
			return name
		}
	}
	return ""
}

// indentOf returns the byte offset of the first non-whitespace character, or
// len(s) when the line is blank.
func indentOf(s string) int {
	if i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }); i >= 0 {
		return i
	}
	return len(s)
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
