// Package cli provides the interactive examtrainer command-line client.
//
// It wires configuration, the local token database, the API facades and the
// session store into an interactive REPL. Every command maps to one view,
// mirroring the routes of the web client the platform started with; views
// gated behind authentication or the admin role go through the route guard
// before they render.
//
// Typical flow: restore the previous session (bootstrap), then accept
// commands:
//
//	Not signed in:
//	  - register       - create an account
//	  - login          - sign in
//	Signed in:
//	  - categories, subjects        - browse the catalog
//	  - questions                   - browse approved questions
//	  - recommend                   - submit a candidate question
//	  - generate, result, history   - exam lifecycle
//	  - ranking, profile            - results and stats
//	  - pending (admin)             - moderation queue
//	  - logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and dispatch for details.
package cli
