// Package prompt asks the interactive yes/no questions that select which
// OAuth providers to generate.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robertgumeny/authkit/internal/providers"
	"github.com/robertgumeny/authkit/internal/types"
)

// ErrClosed is returned by Prompter methods called after Close.
var ErrClosed = errors.New("prompt closed")

// Prompter reads answers from in and writes questions to out.
// Callers must Close it when done; Close releases in if it is an io.Closer.
type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	closed bool
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, reader: bufio.NewReader(in), out: out}
}

// Confirm prints question and reports whether the answer starts with y or Y.
// End of input counts as "no".
func (p *Prompter) Confirm(question string) (bool, error) {
	if p.closed {
		return false, ErrClosed
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return false, err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "y"), nil
}

// SelectProviders asks one question per supported provider, in
// types.AllProviders order, and returns the ones answered yes.
// An empty result is not an error here; the caller decides.
func (p *Prompter) SelectProviders() ([]types.Provider, error) {
	fmt.Fprintln(p.out, "Select authentication providers:")
	for i, prov := range types.AllProviders {
		fmt.Fprintf(p.out, "%d. %s OAuth\n", i+1, providers.MustLookup(prov).DisplayName)
	}
	fmt.Fprintln(p.out)

	var selected []types.Provider
	for _, prov := range types.AllProviders {
		ok, err := p.Confirm(fmt.Sprintf("Enable %s OAuth? (y/n): ", providers.MustLookup(prov).DisplayName))
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, prov)
		}
	}
	return selected, nil
}

// Close releases the input. It is safe to call more than once.
func (p *Prompter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
