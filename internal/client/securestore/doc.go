// Package securestore keeps the session tokens on disk.
//
// Values live in a SQLite table and are sealed with AES-GCM under a key
// derived from a per-device secret file. The record key is bound in as
// additional data, so a ciphertext copied under another key fails to open.
package securestore
