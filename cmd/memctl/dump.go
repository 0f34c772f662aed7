package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var dumpLen uint64

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Uint64Var(&dumpLen, "len", 64, "Number of bytes to dump")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file> <offset>",
		Short: "Hex dump bytes at an offset",
		Long: `The dump command prints a hex dump of the mapped bytes starting at the
given offset. The offset addresses the raw file, the same space Alloc
returns; pass the offset of an allocation to see its payload.

Example:
  memctl dump data.mem 40
  memctl dump data.mem 40 --len 256`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	offset, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("bad offset %q: %w", args[1], err)
	}

	f, err := openExisting(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Clamp to the mapping rather than erroring on a short tail.
	length := dumpLen
	if size := uint64(f.Size()); offset < size && length > size-offset {
		length = size - offset
	}

	b, err := f.Read(offset, length)
	if err != nil {
		return err
	}

	fmt.Print(hex.Dump(b))
	return nil
}
