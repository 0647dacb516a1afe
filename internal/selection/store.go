package selection

import (
	"context"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// BlockStore persists multi-range block starts between sessions. The engine
// never mutates host data, so the host saves Engine.Blocks after each
// accepted pick and feeds them back through Config.BlockStarts.
type BlockStore interface {
	ListBlocks(ctx context.Context) ([]dateutil.Date, error)
	SaveBlocks(ctx context.Context, starts []dateutil.Date) error
}
