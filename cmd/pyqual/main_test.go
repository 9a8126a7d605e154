package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modelsSource = `LIMIT = 10

class User:
    def save(self):
        pass
`

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pyproject.toml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "app"), 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "app", "models.py")
	if err := os.WriteFile(file, []byte(modelsSource), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPathAndImportCommands(t *testing.T) {
	file := newProject(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"path", file, "1"}, "app.models.LIMIT"},
		{[]string{"import", file, "1"}, "from app.models import LIMIT"},
		{[]string{"path", file, "4"}, "app.models.User.save"},
		{[]string{"import", file, "4"}, "from app.models import User"},
		{[]string{"path", file, "2"}, "app.models"},
		{[]string{"import", file, "2"}, "from app.models import *"},
		{[]string{"path", file, "99"}, "app.models"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[:1], "")+" "+tt.args[2], func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("run %v: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementCommand(t *testing.T) {
	file := newProject(t)

	out, err := run(t, "element", "--format", "line", file, "3")
	if err != nil {
		t.Fatalf("element: %v", err)
	}
	want := "3\tclass\tapp.models.User\tfrom app.models import User\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = run(t, "element", file, "4")
	if err != nil {
		t.Fatalf("element json: %v", err)
	}
	if !strings.Contains(out, `"qualifiedPath": "app.models.User.save"`) {
		t.Errorf("json output missing qualified path:\n%s", out)
	}

	if _, err := run(t, "element", "--format", "xml", file, "1"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestScanCommand(t *testing.T) {
	file := newProject(t)

	out, err := run(t, "scan", file)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := "1\tconstant\tapp.models.LIMIT\tfrom app.models import LIMIT\n" +
		"3\tclass\tapp.models.User\tfrom app.models import User\n" +
		"4\tmethod\tapp.models.User.save\tfrom app.models import User\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRootCommand(t *testing.T) {
	file := newProject(t)
	root := filepath.Dir(filepath.Dir(file))

	out, err := run(t, "root", file)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if got := strings.TrimSpace(out); got != root {
		t.Errorf("root = %q, want %q", got, root)
	}

	out, err = run(t, "root", "-v", file)
	if err != nil {
		t.Fatalf("root -v: %v", err)
	}
	for _, want := range []string{"Marker:  pyproject.toml", "Module:  app.models"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestRejectsNonPythonFiles(t *testing.T) {
	_, err := run(t, "path", "/tmp/notes.txt", "1")
	if !errors.Is(err, errNotPython) {
		t.Errorf("err = %v, want %v", err, errNotPython)
	}
}

func TestLineArg(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"42", 41, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := lineArg(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("lineArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("lineArg(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}

func TestMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "path", filepath.Join(dir, "gone.py"), "1"); err == nil {
		t.Error("expected error for missing file")
	}
}
