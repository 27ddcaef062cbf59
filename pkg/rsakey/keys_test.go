package rsakey

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
)

// Key generation dominates test runtime, so each size is generated once and
// shared. Tests must not mutate the returned keys.
var (
	key2048Once sync.Once
	key2048     *rsa.PrivateKey

	key4096Once sync.Once
	key4096     *rsa.PrivateKey
)

func testKey2048(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key2048Once.Do(func() {
		var err error
		key2048, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
	})
	return key2048
}

func testKey4096(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key4096Once.Do(func() {
		var err error
		key4096, err = rsa.GenerateKey(rand.Reader, 4096)
		if err != nil {
			panic(err)
		}
	})
	return key4096
}

func testPrivateContainer(t *testing.T, key *rsa.PrivateKey) *PrivateKey {
	t.Helper()
	container, err := PrivateKeyFromCrypto(key)
	if err != nil {
		t.Fatalf("PrivateKeyFromCrypto: %v", err)
	}
	return container
}
