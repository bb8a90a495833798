// Package main hosts the folderize CLI entrypoint and command graph.
//
// The root command takes the files to organize; config loading, flag
// overrides and logger setup are centralized in commandContext so the
// subcommands (check, config init, config validate) stay small. Behaviour
// belongs in the internal packages; this package only translates flags and
// renders results.
package main
