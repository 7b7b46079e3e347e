package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// DigestCredentials computes the one-way credential digest stored in the
// users table: HMAC-SHA512 over email+password, keyed with the server-wide
// hashing secret.
//
// Binding the email and the server secret into the digest means that the same
// password produces different digests for different accounts, and that
// rotating the secret invalidates every stored digest at once. There is no
// decode operation; authentication always recomputes the digest and compares.
func DigestCredentials(email, password, secret string) string {
	return HashString(email+password, secret)
}

// HashString computes an HMAC-SHA512 signature over the given string using
// the provided key and returns the result as a hex-encoded string.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes a raw HMAC-SHA512 digest over the given byte slice
// using the provided key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha512.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HashEqual reports whether two hex-encoded digests are equal in constant
// time with respect to their contents.
func HashEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
