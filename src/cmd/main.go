package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glaciate/snowflake/src/app"
)

func parseU32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a 32-bit unsigned integer", name, s)
	}

	return uint32(v), nil
}

func decodeTarget(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) == 0 {
		return nil, fmt.Errorf("target hash %q is not valid hex", s)
	}

	return b, nil
}

func report(seed uint32, found bool) {
	if found {
		fmt.Printf("[+] Seed found: %d\n", seed)
	} else {
		fmt.Println("[-] Seed not found :-(")
	}
}

func operationFailed(err error) {
	fmt.Fprintf(os.Stderr, "[-] An error occurred: %v\n", err)
}

func main() {
	a := app.New()
	defer a.Close()

	root := &cobra.Command{
		Use:          "snowflake",
		Short:        "hash cracking utility for 32-bit PRNG seeds",
		SilenceUsage: true,
	}

	generate := &cobra.Command{
		Use:   "generate <chain num> <chain len> <table num> <hash function>",
		Short: "precompute sorted rainbow tables",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			chainNum, err := parseU32("chain num", args[0])
			if err != nil {
				return err
			}

			chainLen, err := parseU32("chain len", args[1])
			if err != nil {
				return err
			}

			tableCount, err := parseU32("table num", args[2])
			if err != nil {
				return err
			}

			if err := a.Generate(chainNum, chainLen, tableCount, args[3]); err != nil {
				operationFailed(err)
			}

			return nil
		},
	}

	search := &cobra.Command{
		Use:   "search <rainbow table> <target hash>",
		Short: "recover a seed from a precomputed table",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := decodeTarget(args[1])
			if err != nil {
				return err
			}

			seed, found, err := a.Search(args[0], target)
			if err != nil {
				operationFailed(err)
				return nil
			}

			report(seed, found)

			return nil
		},
	}

	crack := &cobra.Command{
		Use:   "crack <hash function> <target hash>",
		Short: "recover a seed by exhausting the 32-bit space",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := decodeTarget(args[1])
			if err != nil {
				return err
			}

			seed, found, err := a.Crack(args[0], target)
			if err != nil {
				operationFailed(err)
				return nil
			}

			report(seed, found)

			return nil
		},
	}

	root.AddCommand(generate, search, crack)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
