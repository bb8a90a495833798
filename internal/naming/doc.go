// Package naming derives destination paths from underscore-separated file
// names.
//
// A base name such as dialog_utils_outline_logic.lua is split into segments;
// the first two segments become nested directories under the file's parent
// and the last two become the new file name, so the file lands at
// dialog/utils/outline_logic.lua. Everything here is a pure function of the
// input path and never touches the filesystem beyond resolving an absolute
// parent directory.
package naming
