package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cryptkit/pkg/rsakey"
)

var (
	cryptKeyPath string
	cryptIn      string
	cryptOut     string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a stream with a public key container",
	Long: `Encrypt a stream as a sequence of RSA blocks. The input is consumed in
chunks sized to the key's modulus minus padding overhead; each chunk becomes
one fixed-size ciphertext block.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadPublicKey(cryptKeyPath)
		if err != nil {
			return err
		}
		in, err := openInput(cryptIn)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := openOutput(cryptOut)
		if err != nil {
			return err
		}
		defer out.Close()

		read, err := rsakey.EncryptContext(cmd.Context(), out, in, key)
		if err != nil {
			return err
		}
		logf("encrypted %d input bytes", read)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a stream with a private key container",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadPrivateKey(cryptKeyPath)
		if err != nil {
			return err
		}
		in, err := openInput(cryptIn)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := openOutput(cryptOut)
		if err != nil {
			return err
		}
		defer out.Close()

		read, err := rsakey.DecryptContext(cmd.Context(), out, in, key)
		if err != nil {
			return err
		}
		logf("decrypted %d ciphertext bytes", read)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringVar(&cryptKeyPath, "key", "", "key container file")
		c.Flags().StringVar(&cryptIn, "in", "", "input file (default stdin)")
		c.Flags().StringVar(&cryptOut, "out", "", "output file (default stdout)")
		c.MarkFlagRequired("key")
	}
	rootCmd.AddCommand(encryptCmd, decryptCmd)
}
