package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pwned/internal/util/memzero"
)

func passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password [password|-]",
		Short: "Report how often a password appears in breaches",
		Long:  "Report how often a password appears in breaches. Omit the password or pass - to read it from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}
			res, err := appCtx.Passwords.LookupPassword(cmd.Context(), pw)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}
			if res.Compromised {
				fmt.Fprintf(cmd.OutOrStdout(), "Pwned: seen %d times in data breaches\n", res.Count)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Not found in any data breach")
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [password|-]",
		Short: "Accept or reject a password; exits non-zero on rejection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}
			verdict, err := appCtx.Validator.Validate(cmd.Context(), pw)
			if err != nil {
				return err
			}
			if jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), verdict); err != nil {
					return err
				}
			} else if verdict.Accepted() {
				fmt.Fprintln(cmd.OutOrStdout(), "accepted")
			}
			return verdict.Err()
		},
	}
}

// passwordArg returns args[0], or the first line of stdin when it is absent
// or "-".
func passwordArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	return readSecret(cmd.InOrStdin())
}

func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadSlice('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer memzero.Zero(line)

	pw := string(bytes.TrimRight(line, "\r\n"))
	if pw == "" {
		return "", fmt.Errorf("read password: empty input")
	}
	return pw, nil
}
