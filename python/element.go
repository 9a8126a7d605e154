package python

import "path/filepath"

// Element is what was found at a line of a Python source file. Every field is
// empty when nothing of that kind was detected, except ModulePath which is
// always derived from the file location.
type Element struct {
	ClassName    string
	MethodName   string
	ConstantName string
	ModulePath   string
}

// IsZero reports whether no class, function or constant was detected.
func (e Element) IsZero() bool {
	return e.ClassName == "" && e.MethodName == "" && e.ConstantName == ""
}

// IsPythonFile reports whether path names a Python source file.
func IsPythonFile(path string) bool {
	return filepath.Ext(path) == ".py"
}

// Kind names what the element refers to: "method", "function", "class",
// "constant", or "module" when nothing was detected.
func (e Element) Kind() string {
	switch {
	case e.MethodName != "" && e.ClassName != "":
		return "method"
	case e.MethodName != "":
		return "function"
	case e.ClassName != "":
		return "class"
	case e.ConstantName != "":
		return "constant"
	default:
		return "module"
	}
}
