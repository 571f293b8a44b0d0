package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muurk/lightmixer/internal/light"
	"github.com/muurk/lightmixer/internal/logging"
	"github.com/muurk/lightmixer/internal/ui"
)

// Input validation errors. Both are recoverable: the session prints a usage
// hint and prompts again.
var (
	ErrBadInputFormat = errors.New("bad input format")
	ErrBadIndex       = errors.New("bad controller index")
)

// Usage hint printed after malformed input.
var usageHint = []string{
	"Use the following format: <list number>:<value>",
	"Example: 4:255",
}

// ParseInput parses "<index>:<value>" and returns the selected index and the
// value clamped to that controller's maximum.
func ParseInput(line string, controllers []*light.Controller) (int, uint64, error) {
	parts := strings.Split(strings.TrimSpace(line), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected exactly one ':' in %q", ErrBadInputFormat, strings.TrimSpace(line))
	}

	index, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid list number %q", ErrBadInputFormat, parts[0])
	}
	if index >= uint64(len(controllers)) {
		return 0, 0, fmt.Errorf("%w: %d (have %d controllers)", ErrBadIndex, index, len(controllers))
	}

	value, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid value %q", ErrBadInputFormat, parts[1])
	}

	return int(index), controllers[index].Clamp(value), nil
}

// Session is one interactive console run.
type Session struct {
	Controllers []*light.Controller

	// Alias returns the display alias for a device path; may be nil.
	Alias func(path string) string

	// ShowPrompt prints "> " before each read. Off when input is piped.
	ShowPrompt bool

	in      *bufio.Reader
	printer *ui.Printer
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, controllers []*light.Controller) *Session {
	return &Session{
		Controllers: controllers,
		in:          bufio.NewReader(in),
		printer:     ui.NewPrinter(out),
	}
}

// Run prints the controller list and then applies "<index>:<value>" lines
// until input ends or a write fails. Malformed lines print a usage hint and
// do not end the session. A failed write is printed and ends the session;
// its error is returned so callers can tell the two endings apart.
func (s *Session) Run() error {
	s.printer.PrintControllers(s.Controllers, s.Alias)

	for {
		line, ok := s.readLine()
		if !ok {
			return nil
		}

		index, value, err := ParseInput(line, s.Controllers)
		if err != nil {
			logging.Debug("Rejected console input")
			s.printer.PrintHint(usageHint...)
			continue
		}

		c := s.Controllers[index]
		s.printer.PrintUpdate(c, value)
		if err := c.SetBrightness(value); err != nil {
			s.printer.PrintError(err)
			return err
		}

		s.printer.PrintControllers(s.Controllers, s.Alias)
	}
}

// readLine returns the next input line. ok is false once input is exhausted;
// a final unterminated line is still returned.
func (s *Session) readLine() (string, bool) {
	if s.ShowPrompt {
		s.printer.Prompt()
	}
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}
