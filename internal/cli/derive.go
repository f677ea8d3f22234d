package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/stegokeys/derive"
)

func newDeriveCommand(a *app) *cobra.Command {
	var record string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive keys from a passphrase and print the salt record",
		Long: `Derive the encryption and PRNG keys for a passphrase.

Without --record a fresh salt is drawn and the new salt record is printed; store
it next to the ciphertext. With --record the keys are derived again from a
stored record, and the record is echoed back on success.

The passphrase is read from the terminal without echo, or as a single line from
stdin when stdin is not a terminal. Keys are wiped before the command exits and
are never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := a.params()
			if record == "" {
				// Reject bad parameters before asking for a passphrase.
				if err := params.Validate(); err != nil {
					return err
				}
			}

			pass, err := readPassphrase(cmd, record == "")
			if err != nil {
				return err
			}
			defer pass.Destroy()

			d := derive.New(derive.WithLogger(a.logger))
			var res *derive.Result
			if record != "" {
				res, err = d.RederiveRecord(pass, record)
			} else {
				res, err = d.Derive(pass, params)
			}
			if err != nil {
				return err
			}
			defer res.Destroy()

			fmt.Fprintln(cmd.OutOrStdout(), res.Record())
			return nil
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "re-derive from a stored salt record instead of drawing a new salt")
	return cmd
}
