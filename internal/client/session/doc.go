// Package session owns the CLI's authentication state: the bearer
// credential, the identity derived from it and whether the initial decode is
// still pending.
//
// A Store is created from the persisted credential and starts out Hydrating.
// Hydrate decodes the credential and moves the store to Authenticated or
// Unauthenticated. Login and Logout are the only other mutations. Identity is
// derived here and nowhere else, so every part of the CLI agrees on whether
// the user is signed in.
//
// Credentials are decoded without signature verification. Decoding only
// decides what the CLI shows; the backend decides what a credential may do.
//
// Expiry is checked when a credential is decoded and not on a timer. A
// session that lapses while the CLI runs ends at the next backend 401, which
// reaches the store through Invalidate.
package session
