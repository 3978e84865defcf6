package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/contacts/internal/formatter"
	"github.com/desertthunder/contacts/internal/search"
	"github.com/desertthunder/contacts/internal/shared"
	"github.com/desertthunder/contacts/internal/store"
)

// Choice is a menu entry number.
type Choice int

const (
	ChoiceList Choice = iota + 1
	ChoiceAdd
	ChoiceSearch
	ChoiceQuit
)

var menu = []struct {
	choice Choice
	label  string
}{
	{ChoiceList, "List contacts"},
	{ChoiceAdd, "Add contact"},
	{ChoiceSearch, "Search contacts"},
	{ChoiceQuit, "Quit"},
}

// Options configures a [Shell].
type Options struct {
	In     io.Reader
	Out    io.Writer
	Path   string
	Store  store.Options
	Logger *log.Logger
}

// Shell is the menu loop bound to one contacts file.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	path   string
	opts   store.Options
	logger *log.Logger
}

// New creates a [Shell], defaulting to stdin/stdout.
func New(opts Options) *Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Store.Logger == nil {
		opts.Store.Logger = opts.Logger
	}

	return &Shell{
		in:     bufio.NewReader(opts.In),
		out:    opts.Out,
		path:   opts.Path,
		opts:   opts.Store,
		logger: opts.Logger,
	}
}

// Run loops over the menu until the user quits, input ends, ctx is cancelled or a fatal error occurs.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := s.iterate()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// iterate runs one pass of the menu against a freshly opened session.
func (s *Shell) iterate() (bool, error) {
	sess, err := store.Open(s.path, s.opts)
	if err != nil {
		return false, err
	}
	defer sess.Close()

	s.printMenu()

	choice, err := s.readChoice()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return true, nil
	}
	if err != nil {
		return false, err
	}

	s.logger.Debug("menu choice", "choice", choice, "loaded", sess.Count())

	switch choice {
	case ChoiceList:
		return false, s.list(sess)
	case ChoiceAdd:
		return false, s.add(sess)
	case ChoiceSearch:
		return false, s.search(sess)
	case ChoiceQuit:
		return true, nil
	default:
		fmt.Fprintf(s.out, "Unknown option %d\n\n", choice)
		return false, nil
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "Contact Manager")
	for _, item := range menu {
		fmt.Fprintf(s.out, "  %d. %s\n", item.choice, item.label)
	}
	fmt.Fprint(s.out, "> ")
}

// readChoice returns io.EOF only when input ended before any text was entered.
func (s *Shell) readChoice() (Choice, error) {
	line, err := s.prompt()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: menu choice %q is not a number", shared.ErrInvalidInput, line)
	}
	return Choice(n), nil
}

// prompt reads one trimmed line of input.
func (s *Shell) prompt() (string, error) {
	line, err := s.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
	case err != nil:
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return strings.TrimSpace(line), nil
}

// ask prints a label and reads the answer; end of input is an error here.
func (s *Shell) ask(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	answer, err := s.prompt()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: input ended while reading %s", shared.ErrInvalidInput, strings.ToLower(label))
	}
	return answer, err
}

func (s *Shell) list(sess *store.Session) error {
	fmt.Fprintln(s.out)
	if sess.Count() == 0 {
		fmt.Fprintf(s.out, "No contacts.\n\n")
		return nil
	}
	if err := formatter.WriteTable(s.out, sess.Records()); err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) add(sess *store.Session) error {
	name, err := s.ask("Name")
	if err != nil {
		return err
	}
	email, err := s.ask("Email (optional)")
	if err != nil {
		return err
	}

	c, err := sess.Add(name, email)
	if errors.Is(err, shared.ErrInvalidInput) {
		fmt.Fprintf(s.out, "Contact not added: %v\n\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("contact added", "id", c.ID, "path", sess.Path())
	fmt.Fprintf(s.out, "Added %s\n\n", c)
	return nil
}

func (s *Shell) search(sess *store.Session) error {
	query, err := s.ask("Search")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	rows, err := search.Search(query, sess.Contents(), s.opts.Header, s.out)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(s.out, "No contacts match %q.\n", query)
	}
	fmt.Fprintln(s.out)
	return nil
}
