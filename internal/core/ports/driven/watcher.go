package driven

import "context"

// FileWatcher signals when a file changes on disk.
type FileWatcher interface {
	// Watch emits on the returned channel after each change to path.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
