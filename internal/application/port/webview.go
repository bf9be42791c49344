package port

import "github.com/bnema/atlas/internal/domain/entity"

// HostEventKind enumerates rendering-host notifications.
type HostEventKind int

const (
	// HostLoadStarted indicates navigation has begun.
	HostLoadStarted HostEventKind = iota
	// HostRedirected indicates the pending load was redirected to URL.
	HostRedirected
	// HostLoadFinished indicates the page has fully loaded.
	HostLoadFinished
	// HostLoadFailed indicates the load failed; Err carries the reason.
	HostLoadFailed
	// HostTitleChanged carries the page's real title.
	HostTitleChanged
	// HostInPageNavigation indicates the page changed its URL without a full load.
	HostInPageNavigation
)

// String returns a human-readable representation of the event kind.
func (k HostEventKind) String() string {
	switch k {
	case HostLoadStarted:
		return "load-started"
	case HostRedirected:
		return "redirected"
	case HostLoadFinished:
		return "load-finished"
	case HostLoadFailed:
		return "load-failed"
	case HostTitleChanged:
		return "title-changed"
	case HostInPageNavigation:
		return "in-page-navigation"
	default:
		return "unknown"
	}
}

// HostEvent is a message from the embedded rendering host about one tab.
// The session consumes these from a channel, so any embedding technology can
// drive it.
type HostEvent struct {
	Kind  HostEventKind
	TabID entity.TabID
	URL   string
	Title string
	Err   error
}
