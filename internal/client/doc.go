// Package client implements the interactive console application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: restore the persisted session, fall back to the login
// form, run the conversation screens, and start over after a logout.
package client
