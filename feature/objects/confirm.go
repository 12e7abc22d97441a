package objects

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer decides whether a destructive operation may proceed.
//
// It is an injected capability: the CLI supplies a terminal prompt, the
// gateway and tests supply stubs. A nil Confirmer on the Service denies
// every request.
type Confirmer func(prompt string) bool

// Terminal returns a Confirmer that asks a yes/no question on out and reads
// the answer from in. Only an exact "yes" proceeds; a blank answer defaults
// to no.
func Terminal(in io.Reader, out io.Writer) Confirmer {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [yes/no] (default: no): ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		return strings.TrimSpace(line) == "yes"
	}
}

// AlwaysConfirm accepts every request. Used when the operator passed --yes.
func AlwaysConfirm(string) bool { return true }
