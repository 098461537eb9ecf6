package streams

import (
	"io"

	"github.com/moby/term"
)

// In is the CLI input stream. It remembers whether the underlying reader is a terminal,
// which decides the default of the --tty flag.
type In struct {
	io.Reader
	isTerminal bool
}

func NewIn(r io.Reader) *In {
	_, isTerminal := term.GetFdInfo(r)

	return &In{Reader: r, isTerminal: isTerminal}
}

func (i *In) IsTerminal() bool {
	return i.isTerminal
}

// Out is the CLI output stream for command results, help and progress titles.
type Out struct {
	io.Writer
}

func NewOut(w io.Writer) *Out {
	return &Out{Writer: w}
}
