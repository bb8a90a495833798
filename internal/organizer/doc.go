// Package organizer copies underscore-named files into the nested folders
// their names describe.
//
// Process handles one input: it checks the input is a regular file, computes
// the naming.Plan, ensures the destination directory, refuses to replace an
// existing destination, and copies the file with its metadata. Run applies
// Process to a batch in order. Skips are outcomes, not errors; only I/O
// faults surface as errors. Dry runs make every decision and report it but
// leave the filesystem untouched.
package organizer
