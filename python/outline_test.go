package python

import (
	"strings"
	"testing"
)

func TestOutline(t *testing.T) {
	source := `"""Module docstring."""
import os

MAX_RETRIES = 5

class Client:
    TIMEOUT = 30

    def connect(self):
        pass

def main():
    pass
`
	lines := strings.Split(source, "\n")
	got := Outline(lines, newProjectFile(t))

	want := []LineElement{
		{Line: 3, Element: Element{ConstantName: "MAX_RETRIES"}},
		{Line: 5, Element: Element{ClassName: "Client"}},
		{Line: 8, Element: Element{ClassName: "Client", MethodName: "connect"}},
		{Line: 11, Element: Element{MethodName: "main"}},
	}

	if len(got) != len(want) {
		t.Fatalf("Outline returned %d elements, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		want[i].ModulePath = "pkg.sub.mod"
		if got[i] != want[i] {
			t.Errorf("element %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOutlineEmpty(t *testing.T) {
	if got := Outline([]string{"", "# nothing here"}, newProjectFile(t)); len(got) != 0 {
		t.Errorf("Outline = %+v, want none", got)
	}
}
