package physics

import "fmt"

// Logger receives error lines from the physics core. internal/logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

var logger Logger

// SetLogger installs the logger used for physics errors. nil disables logging.
func SetLogger(l Logger) {
	logger = l
}

func logf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Log(fmt.Sprintf(format, args...))
}
