package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dhamidi/pyqual/python"
	"github.com/dhamidi/pyqual/python/codebase"
)

var errNotPython = errors.New("only works on Python files")

// pythonFile resolves a file argument to an absolute path of a .py file.
func pythonFile(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", arg, err)
	}
	if !python.IsPythonFile(path) {
		return "", fmt.Errorf("%s: %w", arg, errNotPython)
	}
	return path, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read python file: %w", err)
	}
	return codebase.SplitLines(string(data)), nil
}

// lineArg parses a 1-based line number and returns it 0-based.
func lineArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid line %q: %w", arg, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid line %d: lines start at 1", n)
	}
	return n - 1, nil
}

// elementAt classifies the given 1-based line of a Python file.
func elementAt(fileArg, lineStr string) (python.LineElement, error) {
	path, err := pythonFile(fileArg)
	if err != nil {
		return python.LineElement{}, err
	}
	line, err := lineArg(lineStr)
	if err != nil {
		return python.LineElement{}, err
	}
	lines, err := readLines(path)
	if err != nil {
		return python.LineElement{}, err
	}
	return python.LineElement{
		Line:    line,
		Element: python.ElementAtLine(lines, line, path),
	}, nil
}
