package ports

import (
	"context"
	"io"
)

// AssetHost uploads a file and returns its durable public URL. Single call,
// no chunking, no resumability. There is no delete: uploads orphaned by a
// failed publish stay on the host.
type AssetHost interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
