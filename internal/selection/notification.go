package selection

import (
	"fmt"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Kind identifies a notification.
type Kind int

const (
	DateSelected  Kind = iota // single pick, or a new multi-range block
	StartSelected             // range start changed
	EndSelected               // range end changed
	BlockSelected             // a multi-range block was created or re-selected
)

// String returns a stable name for logs.
func (k Kind) String() string {
	switch k {
	case DateSelected:
		return "date_selected"
	case StartSelected:
		return "start_selected"
	case EndSelected:
		return "end_selected"
	case BlockSelected:
		return "block_selected"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Notification is emitted by a pick. Zero dates stand for "none".
type Notification struct {
	Kind       Kind
	Date       dateutil.Date // the picked date, or the block start for BlockSelected
	RangeStart dateutil.Date
	RangeEnd   dateutil.Date
}

// String renders the notification for CLI output and logs.
func (n Notification) String() string {
	switch n.Kind {
	case StartSelected:
		return fmt.Sprintf("%s date=%s start=%s", n.Kind, n.Date, n.RangeStart)
	case EndSelected:
		return fmt.Sprintf("%s date=%s end=%s", n.Kind, n.Date, n.RangeEnd)
	case BlockSelected:
		return fmt.Sprintf("%s start=%s", n.Kind, n.Date)
	default:
		return fmt.Sprintf("%s date=%s", n.Kind, n.Date)
	}
}
