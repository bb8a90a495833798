package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the parent directory of every path once, in first-seen
// order.
func RunAll(paths []string) []Result {
	seen := make(map[string]struct{}, len(paths))
	var results []Result
	for _, path := range paths {
		absolute, err := filepath.Abs(path)
		if err != nil {
			results = append(results, Result{Name: path, Detail: fmt.Sprintf("error: resolve path: %v", err)})
			continue
		}
		parent := filepath.Dir(absolute)
		if _, ok := seen[parent]; ok {
			continue
		}
		seen[parent] = struct{}{}
		results = append(results, CheckDirectoryAccess(parent))
	}
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: path, Detail: "error: does not exist"}
		}
		return Result{Name: path, Detail: fmt.Sprintf("error: stat: %v", err)}
	}
	if !info.IsDir() {
		return Result{Name: path, Detail: "error: is not a directory"}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: path, Detail: fmt.Sprintf("error: insufficient permissions: %v", err)}
	}
	return Result{Name: path, Passed: true, Detail: "read/write ok"}
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
