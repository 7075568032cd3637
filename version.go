// Package codexrun holds build metadata of the codexrun CLI.
package codexrun

// Version is the version of codexrun. It is set at build time using `-ldflags "-X ..."`.
var Version = "development"
