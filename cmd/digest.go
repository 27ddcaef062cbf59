package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cryptkit/pkg/checksum"
	"github.com/deploymenttheory/go-cryptkit/pkg/sha256sum"
)

var digestIn string

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Compute the SHA-256 digest of a stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(digestIn)
		if err != nil {
			return err
		}
		defer in.Close()

		hash, read, err := sha256sum.SumReaderContext(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Println(hash)
		logf("digested %d bytes", read)
		return nil
	},
}

var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Compute the CRC64 checksum of a stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(digestIn)
		if err != nil {
			return err
		}
		defer in.Close()

		sum, read, err := checksum.SumReaderContext(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("%016x\n", sum)
		logf("checksummed %d bytes", read)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{digestCmd, checksumCmd} {
		c.Flags().StringVar(&digestIn, "in", "", "input file (default stdin)")
	}
	rootCmd.AddCommand(digestCmd, checksumCmd)
}
