// Package rsakey stores RSA keys as flat component containers and moves
// data through them in cipher-sized chunks.
//
// A container owns one contiguous buffer holding the key components
// (modulus, exponent, and for private keys the five CRT parameters) back to
// back as unsigned big-endian bytes, addressed through a fixed-size offset
// header. Containers serialize to a header-then-body wire format and
// round-trip bit-for-bit, including zero-length components.
//
// The transform functions split plaintext streams into blocks sized by the
// key's modulus and PKCS#1 v1.5 padding overhead, and reassemble them on
// decryption from exact block-aligned reads. Signing digests whole streams
// with SHA-256 into a fixed-size Signature.
//
// The actual RSA mathematics, padding, and digest primitives come from
// crypto/rsa and crypto/sha256; this package contributes the bit-exact
// representation and chunk bookkeeping around them.
package rsakey
