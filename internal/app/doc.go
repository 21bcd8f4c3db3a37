// Package app contains the lookup tool's application logic. It defines the
// App struct, its configuration, and the query lifecycle, decoupled from any
// specific entrypoint like a CLI.
package app
