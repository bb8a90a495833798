// Package fileutil holds the filesystem primitives used when placing files:
// existence probes and a copy that keeps permission bits and timestamps and
// refuses to replace an existing destination.
package fileutil
