package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Metadata setters; tests swap them to simulate failures.
var (
	setMode  = os.Chmod
	setTimes = copyTimes
)

// CopyOptions controls which source attributes CopyFilePreserve carries over.
type CopyOptions struct {
	// PreserveTimes applies the source access and modification times to dst.
	PreserveTimes bool
	// Verify hashes both sides of the copy and fails on mismatch.
	Verify bool
}

// Exists reports whether anything occupies path. Dangling symlinks count.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsRegular reports whether path resolves to a regular file.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path resolves to a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFilePreserve streams src to a newly created dst, then applies the
// source permission bits and, when requested, its timestamps. dst is opened
// with O_EXCL so an existing file is never replaced; in that case the
// returned error wraps fs.ErrExist. On any later failure dst is removed.
func CopyFilePreserve(src, dst string, opts CopyOptions) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	perm := srcInfo.Mode().Perm()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if err := copyContents(out, in, srcInfo.Size(), opts.Verify); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	// OpenFile applies the umask; chmod restores the exact source bits.
	if err := setMode(dst, perm); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("set mode: %w", err)
	}
	if opts.PreserveTimes {
		if err := setTimes(src, dst, srcInfo); err != nil {
			_ = os.Remove(dst)
			return fmt.Errorf("set times: %w", err)
		}
	}
	return nil
}

func copyContents(out io.Writer, in io.Reader, srcSize int64, verify bool) error {
	if !verify {
		_, err := io.Copy(out, in)
		return err
	}

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if written != srcSize {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		return errors.New("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
