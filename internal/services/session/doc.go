// Package session resolves which storage session a picker belongs to.
//
// An explicit id always wins. Otherwise the id is derived from the parent
// process, so every command run from the same shell shares one session and
// a new shell starts a fresh one.
package session
