package src

// Logger is the logging surface the engine depends on.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Error(args ...any)
	Sync() error
}
