package out

import "context"

// Collection is one mirrored collection that can be moved between the local
// store and the remote tables as a whole.
type Collection interface {
	Name() string
	RemoteEnabled() bool
	Push(ctx context.Context) (int, error)
	Pull(ctx context.Context) (int, error)
	Counts(ctx context.Context) (local, remote int, err error)
}
