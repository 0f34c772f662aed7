package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check the header and free list for corruption",
		Long: `The verify command walks a memory file's header and free list and
reports the first structural violation it finds: out-of-range nodes,
misaligned or undersized blocks, or a cyclic list (the usual fingerprint of
a double free).

Example:
  memctl verify data.mem`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	path := args[0]

	f, err := openExisting(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Verify(); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	printInfo("%s: OK\n", path)
	return nil
}
