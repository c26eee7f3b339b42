package status

// Package status implements the status relay: an append-only, ordered sink of
// user-visible status lines. Relays never fail; display errors stay inside the
// relay implementation.
