package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Separator splits a base name into segments.
const Separator = "_"

// MinSegments is the number of segments required to build a plan.
const MinSegments = 2

// ErrInsufficientParts reports a base name with fewer than MinSegments
// non-empty segments.
var ErrInsufficientParts = errors.New("needs at least 2 underscore parts")

// Plan describes where one input file is copied.
type Plan struct {
	Source   string
	Parent   string
	Base     string
	Ext      string
	Segments []string
	First    string
	Second   string
	NewName  string
	DestDir  string
	DestPath string
}

// Segments splits name on underscores and drops empty pieces.
func Segments(name string) []string {
	raw := strings.Split(name, Separator)
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// SplitExt separates base into the name and the extension. The extension
// starts at the last dot, unless every character before that dot is also a
// dot, in which case the file has no extension (".bashrc", "..cfg").
func SplitExt(base string) (string, string) {
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return base, ""
	}
	if strings.Trim(base[:idx], ".") == "" {
		return base, ""
	}
	return base[:idx], base[idx:]
}

// NewName joins the last two segments with the separator and appends ext.
func NewName(parts []string, ext string) string {
	tail := parts
	if len(tail) > MinSegments {
		tail = tail[len(tail)-MinSegments:]
	}
	return strings.Join(tail, Separator) + ext
}

// NewPlan computes the destination for path. It returns ErrInsufficientParts
// when the base name has fewer than two segments.
func NewPlan(path string) (Plan, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return Plan{}, fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	base := filepath.Base(path)
	name, ext := SplitExt(base)

	parts := Segments(name)
	if len(parts) < MinSegments {
		return Plan{Source: path, Base: base, Ext: ext, Segments: parts}, ErrInsufficientParts
	}

	parent := filepath.Dir(absolute)
	destDir := filepath.Join(parent, parts[0], parts[1])
	newName := NewName(parts, ext)
	return Plan{
		Source:   path,
		Parent:   parent,
		Base:     base,
		Ext:      ext,
		Segments: parts,
		First:    parts[0],
		Second:   parts[1],
		NewName:  newName,
		DestDir:  destDir,
		DestPath: filepath.Join(destDir, newName),
	}, nil
}
