package console

import (
	"bufio"
	"io"
	"strings"
)

// lineBuffer is how many unread lines the console holds before the reader blocks.
const lineBuffer = 64

// Console reads lines from an io.Reader (usually stdin) on its own goroutine and hands them to the
// main thread. The simulation is single-threaded, so lines are only acted on when Drain is called.
type Console struct {
	lines chan string
	done  chan struct{}
	err   error
}

// Start begins reading r in the background. Blank lines are skipped.
func Start(r io.Reader) *Console {
	c := &Console{
		lines: make(chan string, lineBuffer),
		done:  make(chan struct{}),
	}
	go c.read(r)
	return c
}

func (c *Console) read(r io.Reader) {
	defer close(c.done)
	defer close(c.lines)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c.lines <- line
	}
	c.err = sc.Err()
}

// Drain returns every line received since the last call without blocking.
func (c *Console) Drain() []string {
	var out []string
	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				return out
			}
			out = append(out, line)
		default:
			return out
		}
	}
}

// Done is closed once the reader hits EOF or an error.
func (c *Console) Done() <-chan struct{} {
	return c.done
}

// Err returns the read error, if any, once Done is closed.
func (c *Console) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
