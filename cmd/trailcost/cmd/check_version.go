package cmd

import (
	"fmt"
	"os"

	"github.com/LdDl/trailcost"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// checkVersionCmd represents the check-version command
var checkVersionCmd = &cobra.Command{
	Use:   "check-version [descriptor-file]",
	Short: "Check that stored graph is compatible with current encoder",
	Long: `Compare encoder descriptor written by 'build' command with encoder built
from current settings. Non-zero exit code means graph has to be re-encoded.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckVersion,
}

func runCheckVersion(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "Can't read encoder descriptor")
	}
	stored, err := trailcost.ParseEncoderDescriptor(string(data))
	if err != nil {
		return err
	}
	enc, err := newEncoder()
	if err != nil {
		return err
	}
	if err := enc.CheckCompatible(stored); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Compatible: %s\n", enc.String())
	return nil
}
