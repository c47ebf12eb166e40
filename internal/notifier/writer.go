package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/julianstephens/habitual/internal/models"
)

// WriterSender prints notifications instead of delivering them. Used for
// dry runs and when no tray app is available.
type WriterSender struct {
	W io.Writer
}

func (s WriterSender) Deliver(_ context.Context, content models.Content) error {
	_, err := fmt.Fprintln(s.W, formatText(content))
	return err
}

func formatText(content models.Content) string {
	if content.Title == "" {
		return content.Body
	}
	return content.Title + ": " + content.Body
}
