package cmd

import (
	"io"
	"os"

	"github.com/deploymenttheory/go-cryptkit/pkg/rsakey"
)

// openInput opens a source stream; "-" or an empty path means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput opens a sink; "-" or an empty path means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// loadPublicKey reads a key file and extracts its public container. A
// private container file works too; its public parts are used.
func loadPublicKey(path string) (*rsakey.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// A private container's first header fields can masquerade as a valid
	// public header, so only an exact-length match counts as a public file.
	if pub, err := rsakey.ParsePublicKey(data); err == nil && len(data) == rsakey.PublicHeaderSize+pub.Len() {
		return pub, nil
	}
	priv, err := rsakey.ParsePrivateKey(data)
	if err != nil {
		return nil, err
	}
	return priv.PublicParts(), nil
}

// loadPrivateKey reads a private key container file.
func loadPrivateKey(path string) (*rsakey.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return rsakey.ParsePrivateKey(data)
}
