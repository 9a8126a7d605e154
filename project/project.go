package project

import (
	"os"
	"path/filepath"
	"strings"
)

// markers are checked in this order in every directory on the way up.
var markers = []string{"pyproject.toml", ".git", ".vscode"}

// Markers returns the names whose presence marks the top of a project tree.
func Markers() []string {
	return append([]string(nil), markers...)
}

// Project is the result of locating the project that contains a file.
type Project struct {
	RootDir string
	Marker  string // marker found in RootDir, empty when RootDir is the fallback
}

// Locate walks up from the directory containing filePath and returns the
// first directory that holds one of the project markers. When no ancestor
// holds a marker, the file's own directory is returned with an empty Marker.
// The file itself does not need to exist.
func Locate(filePath string) Project {
	start := filepath.Dir(filePath)
	dir := start
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if marker := markerIn(dir); marker != "" {
			return Project{RootDir: dir, Marker: marker}
		}
		dir = parent
	}
	return Project{RootDir: start}
}

// FindRoot returns the project root directory for filePath.
func FindRoot(filePath string) string {
	return Locate(filePath).RootDir
}

// markerIn returns the first marker present in dir. Any stat error,
// permission denied included, counts as absent.
func markerIn(dir string) string {
	for _, name := range markers {
		if _, err := os.Lstat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	return ""
}

// ModulePath converts filePath into a dotted module path relative to root,
// e.g. "/proj/pkg/sub/mod.py" under "/proj" becomes "pkg.sub.mod".
func ModulePath(root, filePath string) string {
	relPath, err := filepath.Rel(root, filePath)
	if err != nil {
		relPath = filepath.Base(filePath)
	}
	relPath = strings.TrimSuffix(relPath, ".py")
	return strings.NewReplacer("/", ".", `\`, ".").Replace(relPath)
}

// ModulePathFor locates the project root for filePath and returns the dotted
// module path of the file within it.
func ModulePathFor(filePath string) string {
	return ModulePath(FindRoot(filePath), filePath)
}
