// Package preflight checks that the directories folderize writes into are
// usable before a batch runs.
//
// The CLI "folderize check" command calls RunAll with the same file
// arguments a batch would receive: each distinct parent directory must exist
// and be readable, writable and searchable by the current user, since the
// nested destination folders are created beneath it.
package preflight
