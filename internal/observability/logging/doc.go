// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequest(ctx, logging.FromContext(ctx)).Info("resolving weather")
//	}
package logging
