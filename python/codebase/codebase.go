package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/pyqual/python"
)

// Codebase holds the Python documents the language server knows about.
// Documents sent by the editor are marked open and take precedence over
// the file on disk until they are closed.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path  string
	Lines []string
	Open  bool
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanFile loads path from disk unless the editor has it open.
func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f := c.files[path]; f != nil && f.Open {
		return nil
	}
	c.files[path] = &FileInfo{Path: path, Lines: SplitLines(string(content))}
	return nil
}

// OpenFile records the editor's copy of path.
func (c *Codebase) OpenFile(path string, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{Path: path, Lines: SplitLines(content), Open: true}
}

// CloseFile hands path back to the disk copy.
func (c *Codebase) CloseFile(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()

	c.ScanFile(path)
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f := c.files[path]; f != nil && f.Open {
		return
	}
	delete(c.files, path)
}

// RemoveDir drops every closed file below dir.
func (c *Codebase) RemoveDir(dir string) {
	prefix := strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)

	c.mu.Lock()
	defer c.mu.Unlock()
	for path, f := range c.files {
		if strings.HasPrefix(path, prefix) && !f.Open {
			delete(c.files, path)
		}
	}
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Lines returns the lines of path, reading it from disk on first use.
func (c *Codebase) Lines(path string) ([]string, bool) {
	if f := c.GetFile(path); f != nil {
		return f.Lines, true
	}
	if err := c.ScanFile(path); err != nil {
		return nil, false
	}
	if f := c.GetFile(path); f != nil {
		return f.Lines, true
	}
	return nil, false
}

// ElementAt classifies line of path. The project root is located afresh on
// every call.
func (c *Codebase) ElementAt(path string, line int) (python.Element, bool) {
	lines, ok := c.Lines(path)
	if !ok {
		return python.Element{}, false
	}
	return python.ElementAtLine(lines, line, path), true
}

// SplitLines splits text into lines the way an editor presents them: on
// "\n", without the line terminator and without a trailing "\r".
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
