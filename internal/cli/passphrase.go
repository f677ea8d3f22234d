package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hasbyte1/stegokeys/secret"
)

var (
	errEmptyPassphrase    = errors.New("passphrase must not be empty")
	errPassphraseMismatch = errors.New("passphrases do not match")
)

// readPassphrase reads the passphrase into locked memory. On a terminal it
// prompts without echo, and asks twice when confirm is set.
func readPassphrase(cmd *cobra.Command, confirm bool) (*secret.Buffer, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return promptPassphrase(cmd.ErrOrStderr(), int(f.Fd()), confirm)
	}

	pass, err := secret.FromReaderUntil(in, '\n')
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	pass = trimCR(pass)
	if pass.Size() == 0 {
		pass.Destroy()
		return nil, errEmptyPassphrase
	}
	return pass, nil
}

func promptPassphrase(w io.Writer, fd int, confirm bool) (*secret.Buffer, error) {
	fmt.Fprint(w, "Passphrase: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		secret.Wipe(raw)
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return nil, errEmptyPassphrase
	}
	pass := secret.FromBytes(raw)

	if !confirm {
		return pass, nil
	}

	fmt.Fprint(w, "Confirm passphrase: ")
	again, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	defer secret.Wipe(again)
	if err != nil {
		pass.Destroy()
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	if !pass.EqualTo(again) {
		pass.Destroy()
		return nil, errPassphraseMismatch
	}
	return pass, nil
}

// trimCR drops a trailing carriage return left by CRLF line endings.
func trimCR(pass *secret.Buffer) *secret.Buffer {
	b := pass.Bytes()
	if len(b) == 0 || b[len(b)-1] != '\r' {
		return pass
	}
	trimmed := secret.New(len(b) - 1)
	copy(trimmed.Bytes(), b[:len(b)-1])
	trimmed.Freeze()
	pass.Destroy()
	return trimmed
}
