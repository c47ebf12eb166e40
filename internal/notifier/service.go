// Package notifier keeps pending reminder requests and delivers them when
// their trigger comes due.
package notifier

import (
	"context"
	"errors"

	"github.com/julianstephens/habitual/internal/models"
)

// ErrPermissionDenied is returned when reminders are scheduled while
// notifications are disabled.
var ErrPermissionDenied = errors.New("notification permission denied")

// PermissionOptions lists the capabilities requested from the service
type PermissionOptions struct {
	Sound bool
	Alert bool
}

// Request is a single pending notification
type Request = models.Notification

// Service is the notification facility the editor and scheduler depend on.
type Service interface {
	RequestPermission(ctx context.Context, opts PermissionOptions) (bool, error)
	Schedule(ctx context.Context, req Request) error
	// CancelPending removes pending requests. Unknown ids are ignored.
	CancelPending(ctx context.Context, ids []string) error
}

// Sender hands a due notification to something the user will see.
type Sender interface {
	Deliver(ctx context.Context, content models.Content) error
}
