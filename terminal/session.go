// Package terminal drives a conversion form from line-oriented input.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"go-currency-converter"
	"go-currency-converter/convert"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const help = `commands:
  from <amount>        edit the "from" amount
  to <amount>          edit the "to" amount
  source <CODE>        pick the "from" currency
  destination <CODE>   pick the "to" currency (alias: dest)
  swap                 exchange currencies and amounts
  list                 list known currencies
  flag [CODE]          flag image of a currency, the "from" one by default
  show                 print the form
  help                 print this help
  quit                 leave
`

// Session one interactive form. All form access happens on the goroutine
// running Run.
type Session struct {
	form   *convert.Form
	out    io.Writer
	logger log.Logger

	// readerDone closed when the input goroutine of Run exits, tests only
	readerDone chan struct{}
}

// NewSession a session writing to out
func NewSession(form *convert.Form, out io.Writer, logger log.Logger) *Session {
	return &Session{
		form:   form,
		out:    out,
		logger: logger,
	}
}

// Form the form driven by the session
func (s *Session) Form() *convert.Form {
	return s.form
}

// Run reads commands from in until quit, end of input or ctx is done. A table
// arriving on rates is loaded into the form between commands; until then the
// form is usable but does not convert. The reader stops with Run, though a
// Read already blocked on in only returns once in yields.
func (s *Session) Run(ctx context.Context, in io.Reader, rates <-chan converter.Rates) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		if s.readerDone != nil {
			defer close(s.readerDone)
		}
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case table, ok := <-rates:
			if !ok {
				rates = nil
				continue
			}
			s.form.LoadRates(table)
			level.Debug(s.logger).Log("msg", "rates delivered", "currencies", len(table))
			if s.form.Loaded() {
				fmt.Fprintf(s.out, "loaded %d currencies\n", len(table))
				s.show()
			}
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return nil
			}
			if !s.Handle(line) {
				return nil
			}
		}
	}
}

// Handle applies one command line and prints the outcome. It returns false on quit.
func (s *Session) Handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch command {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprint(s.out, help)
	case "from":
		s.form.EditFrom(arg)
		s.show()
	case "to":
		s.form.EditTo(arg)
		s.show()
	case "source", "destination", "dest":
		if arg == "" {
			fmt.Fprintf(s.out, "usage: %s <CODE>\n", command)
			return true
		}
		code := converter.Currency(strings.ToUpper(arg))
		if s.form.Loaded() && !s.form.Rates().Has(code) {
			fmt.Fprintf(s.out, "unknown currency %s\n", code)
			return true
		}
		if command == "source" {
			s.form.SelectSource(code)
		} else {
			s.form.SelectDestination(code)
		}
		s.show()
	case "swap":
		s.form.Swap()
		s.show()
	case "list":
		if !s.form.Loaded() {
			fmt.Fprintln(s.out, "rates not loaded yet")
			return true
		}
		for _, c := range s.form.Currencies() {
			fmt.Fprintln(s.out, c)
		}
	case "flag":
		code := s.form.State().Source
		if arg != "" {
			code = converter.Currency(strings.ToUpper(arg))
		}
		fmt.Fprintln(s.out, converter.FlagURL(code))
	case "show":
		s.show()
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", command)
	}
	return true
}

func (s *Session) show() {
	st := s.form.State()
	marker := func(side convert.Side) string {
		if st.Driving == side {
			return "*"
		}
		return " "
	}
	fmt.Fprintf(s.out, "%sfrom %s %s\n", marker(convert.Source), st.Source, st.AmountFrom)
	fmt.Fprintf(s.out, "%sto   %s %s\n", marker(convert.Destination), st.Destination, st.AmountTo)
	if summary, ok := s.form.Summary(); ok {
		fmt.Fprintf(s.out, "= %s\n", summary)
	}
}
