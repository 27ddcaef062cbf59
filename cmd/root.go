package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cryptkit",
	Short: "Cryptographic utility toolkit",
	Long: `cryptkit is a command-line toolkit for RSA key containers and the
cryptographic odds and ends around them.

Keys are stored as flat binary containers (offset header plus concatenated
component bytes) and can be exchanged as PEM. Encryption and decryption run
as chunked RSA block transforms over streams of any size; signing produces
detached fixed-size signatures over a SHA-256 digest.

Commands:
  keygen      Generate an RSA key container pair
  encrypt     Encrypt a stream with a public key container
  decrypt     Decrypt a stream with a private key container
  sign        Produce a detached signature for a stream
  verify      Check a detached signature against a stream
  digest      Compute the SHA-256 digest of a stream
  checksum    Compute the CRC64 checksum of a stream
  inspect     Show a container's component layout`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
}

func logf(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
