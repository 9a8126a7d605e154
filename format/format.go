package format

import (
	"encoding"

	"github.com/dhamidi/pyqual/python"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(elements ...python.LineElement) error
}

// QualifiedPath joins the module path with the class and method names. A
// constant is only appended when neither a class nor a method was found.
func QualifiedPath(e python.Element) string {
	path := e.ModulePath
	if e.ClassName != "" {
		path += "." + e.ClassName
	}
	if e.MethodName != "" {
		path += "." + e.MethodName
	}
	if e.ConstantName != "" && e.ClassName == "" && e.MethodName == "" {
		path += "." + e.ConstantName
	}
	return path
}

// ImportStatement returns the import that brings the element into scope.
// A method's enclosing class is imported rather than the method itself.
func ImportStatement(e python.Element) string {
	return "from " + e.ModulePath + " import " + importSymbol(e)
}

func importSymbol(e python.Element) string {
	switch {
	case e.ClassName != "":
		return e.ClassName
	case e.MethodName != "":
		return e.MethodName
	case e.ConstantName != "":
		return e.ConstantName
	default:
		return "*"
	}
}
