package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cryptkit/pkg/rsakey"
)

var (
	signKeyPath string
	signIn      string
	signSigPath string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Produce a detached signature for a stream",
	Long: `Digest the whole input with SHA-256 and sign it with a private key
container, writing the fixed-size raw signature to the --sig file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadPrivateKey(signKeyPath)
		if err != nil {
			return err
		}
		in, err := openInput(signIn)
		if err != nil {
			return err
		}
		defer in.Close()

		sig, read, err := rsakey.SignContext(cmd.Context(), in, key)
		if err != nil {
			return err
		}
		if err := os.WriteFile(signSigPath, sig[:], 0o644); err != nil {
			return err
		}
		logf("signed %d bytes", read)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a detached signature against a stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadPublicKey(signKeyPath)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(signSigPath)
		if err != nil {
			return err
		}
		sig, err := rsakey.SignatureFromSlice(raw)
		if err != nil {
			return err
		}
		in, err := openInput(signIn)
		if err != nil {
			return err
		}
		defer in.Close()

		ok, read, err := sig.VerifyContext(cmd.Context(), in, key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("signature does not match (%d bytes checked)", read)
		}
		if !quiet {
			fmt.Printf("signature OK (%d bytes)\n", read)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{signCmd, verifyCmd} {
		c.Flags().StringVar(&signKeyPath, "key", "", "key container file")
		c.Flags().StringVar(&signIn, "in", "", "input file (default stdin)")
		c.Flags().StringVar(&signSigPath, "sig", "", "signature file")
		c.MarkFlagRequired("key")
		c.MarkFlagRequired("sig")
	}
	rootCmd.AddCommand(signCmd, verifyCmd)
}
