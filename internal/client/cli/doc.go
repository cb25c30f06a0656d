// Package cli provides the interactive CalamaUnido terminal client.
//
// It wires configuration, the encrypted session store, the API client and
// an interactive REPL. Screens live on a navigation stack: Login, Home,
// Publications, PublicationDetail and CreatePublication. Every screen but
// Login shows the bottom bar (inicio, crear, ajustes, perfil).
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigator and runREPL for details.
package cli
