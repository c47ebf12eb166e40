package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habitual/internal/logger"
)

var (
	stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err, prints it to stderr and exits with code 1. A nil error is ignored.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exitFunc(1)
}
