// Package console implements a small line-oriented command language
// for driving a [strq.Queue] by hand or from a script.
package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/strq"
)

var (
	// ErrUnknownCommand is returned for a command name that the
	// console does not recognize.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command is given the wrong
	// arguments.
	ErrUsage = errors.New("bad arguments")

	// ErrFailed is returned when a queue operation reports failure or
	// when its result does not match what the command expected.
	ErrFailed = errors.New("operation failed")
)

var errQuit = errors.New("quit")

// DefaultBufSize is the size of the buffer that rh copies removed
// values into when no other size is configured.
const DefaultBufSize = 1024

// Config configures a Console.
type Config struct {
	// BufSize is the size of the buffer passed to RemoveHead. If it is
	// zero or less, DefaultBufSize is used.
	BufSize int

	// Echo causes each command to be written to the output before it
	// runs.
	Echo bool
}

// A Console runs commands against a single queue. It starts out
// holding no queue, so the first command of most scripts is new.
type Console struct {
	out  io.Writer
	log  *slog.Logger
	conf Config

	q *strq.Queue
}

// New returns a Console that writes command output to out and logs to
// logger. If logger is nil, slog.Default is used.
func New(out io.Writer, logger *slog.Logger, conf Config) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	if conf.BufSize <= 0 {
		conf.BufSize = DefaultBufSize
	}

	return &Console{
		out:  out,
		log:  logger,
		conf: conf,
	}
}

// Queue returns the queue that the console currently holds, which may
// be nil.
func (c *Console) Queue() *strq.Queue {
	return c.q
}

// Run reads commands from r, one per line, and runs them in order.
// Blank lines and lines starting with # are skipped. A failed command
// does not stop the run; instead, Run returns every failure joined
// together once r is exhausted or a quit command is seen.
func (c *Console) Run(r io.Reader) error {
	var errs []error

	s := bufio.NewScanner(r)
	var lineno int
	for s.Scan() {
		lineno++

		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := c.Exec(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			c.log.Warn("command failed", "line", lineno, "command", line, "err", err)
			errs = append(errs, fmt.Errorf("line %v: %w", lineno, err))
		}
	}
	if err := s.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read commands: %w", err))
	}

	return errors.Join(errs...)
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if c.conf.Echo {
		fmt.Fprintf(c.out, "cmd> %v\n", line)
	}
	c.log.Debug("exec", "command", line)

	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return fmt.Errorf("%w: usage: %v", ErrUsage, cmd.usage)
	}

	return cmd.run(c, args)
}

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(c *Console, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new": {
			usage: "new",
			help:  "Create a new queue, freeing the current one",
			run:   (*Console).cmdNew,
		},
		"free": {
			usage: "free",
			help:  "Free the current queue",
			run:   (*Console).cmdFree,
		},
		"ih": {
			usage:   "ih str [n]",
			help:    "Insert str at the head of the queue, n times",
			minArgs: 1,
			maxArgs: 2,
			run:     (*Console).cmdInsertHead,
		},
		"it": {
			usage:   "it str [n]",
			help:    "Insert str at the tail of the queue, n times",
			minArgs: 1,
			maxArgs: 2,
			run:     (*Console).cmdInsertTail,
		},
		"rh": {
			usage:   "rh [str]",
			help:    "Remove the head of the queue, optionally checking its value",
			maxArgs: 1,
			run:     (*Console).cmdRemoveHead,
		},
		"rhq": {
			usage: "rhq",
			help:  "Remove the head of the queue without reading its value",
			run:   (*Console).cmdRemoveHeadQuiet,
		},
		"size": {
			usage:   "size [n]",
			help:    "Print the size of the queue, optionally checking it",
			maxArgs: 1,
			run:     (*Console).cmdSize,
		},
		"reverse": {
			usage: "reverse",
			help:  "Reverse the queue",
			run:   (*Console).cmdReverse,
		},
		"sort": {
			usage: "sort",
			help:  "Sort the queue in ascending order",
			run:   (*Console).cmdSort,
		},
		"show": {
			usage: "show",
			help:  "Print the contents of the queue",
			run:   (*Console).cmdShow,
		},
		"help": {
			usage: "help",
			help:  "List the available commands",
			run:   (*Console).cmdHelp,
		},
		"quit": {
			usage: "quit",
			help:  "Stop reading commands",
			run:   func(*Console, []string) error { return errQuit },
		},
	}
}

func (c *Console) show() {
	fmt.Fprintf(c.out, "q = %v\n", c.q)
}

func (c *Console) cmdNew([]string) error {
	c.q.Free()
	c.q = strq.New()
	c.show()
	return nil
}

func (c *Console) cmdFree([]string) error {
	c.q.Free()
	c.q = nil
	c.show()
	return nil
}

func (c *Console) insert(args []string, insert func(string) bool) error {
	n := 1
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return fmt.Errorf("%w: count %q is not a positive integer", ErrUsage, args[1])
		}
		n = v
	}

	for range n {
		if !insert(args[0]) {
			return fmt.Errorf("%w: insert %q", ErrFailed, args[0])
		}
	}
	c.show()
	return nil
}

func (c *Console) cmdInsertHead(args []string) error {
	return c.insert(args, c.q.InsertHead)
}

func (c *Console) cmdInsertTail(args []string) error {
	return c.insert(args, c.q.InsertTail)
}

func (c *Console) cmdRemoveHead(args []string) error {
	buf := make([]byte, c.conf.BufSize)
	if !c.q.RemoveHead(buf) {
		return fmt.Errorf("%w: remove from %v", ErrFailed, c.q)
	}

	got := buf
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		got = buf[:i]
	}
	fmt.Fprintf(c.out, "Removed %v from queue\n", strconv.Quote(string(got)))

	if len(args) > 0 && args[0] != string(got) {
		return fmt.Errorf("%w: removed %q but expected %q", ErrFailed, got, args[0])
	}
	c.show()
	return nil
}

func (c *Console) cmdRemoveHeadQuiet([]string) error {
	if !c.q.RemoveHead(nil) {
		return fmt.Errorf("%w: remove from %v", ErrFailed, c.q)
	}
	c.show()
	return nil
}

func (c *Console) cmdSize(args []string) error {
	size := c.q.Size()
	fmt.Fprintf(c.out, "Queue size = %v\n", size)

	if len(args) > 0 {
		want, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: size %q is not an integer", ErrUsage, args[0])
		}
		if size != want {
			return fmt.Errorf("%w: size is %v but expected %v", ErrFailed, size, want)
		}
	}
	return nil
}

func (c *Console) cmdReverse([]string) error {
	c.q.Reverse()
	c.show()
	return nil
}

func (c *Console) cmdSort([]string) error {
	c.q.Sort()
	c.show()
	return nil
}

func (c *Console) cmdShow([]string) error {
	c.show()
	return nil
}

func (c *Console) cmdHelp([]string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(c.out, "  %-12v| %v\n", cmd.usage, cmd.help)
	}
	return nil
}
