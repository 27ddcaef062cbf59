package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-cryptkit/pkg/rsakey"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <container-file>",
	Short: "Show a container's component layout",
	Long: `Decode a key container file and print each component's byte length and
start offset. The wire format carries no integrity check, so this is the
quickest way to spot a truncated or garbled container.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		if pub, err := rsakey.ParsePublicKey(data); err == nil && len(data) == rsakey.PublicHeaderSize+pub.Len() {
			offsets := pub.Offsets()
			starts := offsets.Starts()
			fmt.Printf("public key container, body %d bytes\n", pub.Len())
			printComponent("n", starts.N, offsets.N)
			printComponent("e", starts.E, offsets.E)
			return nil
		}

		priv, err := rsakey.ParsePrivateKey(data)
		if err != nil {
			return err
		}
		offsets := priv.Offsets()
		starts := offsets.Starts()
		fmt.Printf("private key container, body %d bytes\n", priv.Len())
		printComponent("n", starts.N, offsets.N)
		printComponent("e", starts.E, offsets.E)
		printComponent("d", starts.D, offsets.D)
		printComponent("p", starts.P, offsets.P)
		printComponent("q", starts.Q, offsets.Q)
		printComponent("dmp1", starts.Dmp1, offsets.Dmp1)
		printComponent("dmq1", starts.Dmq1, offsets.Dmq1)
		printComponent("iqmp", starts.Iqmp, offsets.Iqmp)
		return nil
	},
}

func printComponent(name string, start, length uint64) {
	fmt.Printf("  %-5s start %6d  length %6d\n", name, start, length)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
