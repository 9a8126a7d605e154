package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pyqual/python"
)

type JSONEncoder struct {
	w        io.Writer
	elements []python.LineElement
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(elements ...python.LineElement) error {
	e.elements = elements
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]jsonElement, 0, len(e.elements))
	for _, el := range e.elements {
		data = append(data, buildElementData(el))
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonElement struct {
	Line          int    `json:"line"`
	Kind          string `json:"kind"`
	Module        string `json:"module"`
	Class         string `json:"class,omitempty"`
	Method        string `json:"method,omitempty"`
	Constant      string `json:"constant,omitempty"`
	QualifiedPath string `json:"qualifiedPath"`
	Import        string `json:"import"`
}

func buildElementData(el python.LineElement) jsonElement {
	return jsonElement{
		Line:          el.Line + 1,
		Kind:          el.Kind(),
		Module:        el.ModulePath,
		Class:         el.ClassName,
		Method:        el.MethodName,
		Constant:      el.ConstantName,
		QualifiedPath: QualifiedPath(el.Element),
		Import:        ImportStatement(el.Element),
	}
}
