// Package logger builds configured log/slog loggers for the service.
//
// It provides a small factory over slog with two output formats (JSON for
// production aggregation, text for local development), static service
// attributes, and context extractors that inject request-scoped values such
// as the client IP into every record logged with a request context.
//
//	log := logger.New(
//	    logger.WithProduction("authkit"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        if ip := clientip.FromContext(ctx); ip != "" {
//	            return slog.String("client_ip", ip), true
//	        }
//	        return slog.Attr{}, false
//	    }),
//	)
//
// Configuration can also come from the environment via Config and the
// pkg/config loader.
package logger
