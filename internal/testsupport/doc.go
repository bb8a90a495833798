// Package testsupport provides helpers shared by package tests: temp file
// creation, directory tree snapshots, and preconfigured configs.
package testsupport
