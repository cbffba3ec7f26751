// Package cli provides the interactive agroassist command-line client.
//
// It wires configuration, the token store, the API services and the session,
// then runs a REPL. On start the session is bootstrapped from any stored
// token. The prompt shows the signed-in user, the current location and
// whether the backend was reachable on the last request.
//
// The current location stands in for the page a browser would be on: `goto`
// changes it, and a location carrying guest=true puts `ask` in guest mode,
// where questions go to the session-less query endpoint.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
