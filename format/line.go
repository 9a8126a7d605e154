package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/pyqual/python"
)

// LineEncoder writes one tab-separated record per element:
// line, kind, qualified path, import statement. Lines are 1-based.
type LineEncoder struct {
	w        io.Writer
	elements []python.LineElement
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(elements ...python.LineElement) error {
	e.elements = elements
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, el := range e.elements {
		fmt.Fprintf(&sb, "%d\t%s\t%s\t%s\n",
			el.Line+1,
			el.Kind(),
			QualifiedPath(el.Element),
			ImportStatement(el.Element),
		)
	}
	return []byte(sb.String()), nil
}
