package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ProfileFingerprint identifies the content of a computed profile.
// Two runs over an identical table must produce equal fingerprints.
type ProfileFingerprint Hash

// NewProfileFingerprint hashes serialized profile content
func NewProfileFingerprint(data []byte) ProfileFingerprint {
	return ProfileFingerprint(NewHash(data))
}

// String returns the string representation
func (f ProfileFingerprint) String() string { return Hash(f).String() }
