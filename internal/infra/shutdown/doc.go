// Package shutdown ties a command's lifetime to process signals and runs
// cleanup hooks when it ends.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(context.Context) error { return store.Close() })
//	defer h.Run()
package shutdown
