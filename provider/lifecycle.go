package provider

import "context"

// Initializable is optionally implemented by providers that need setup
// before handling requests (e.g., load native plugin state, warm a cache).
// The host calls Init() once after creating the provider.
type Initializable interface {
	Init(ctx context.Context) error
}

// Closeable is optionally implemented by providers that hold resources
// requiring explicit cleanup. The host calls Close() during shutdown.
type Closeable interface {
	Close(ctx context.Context) error
}
