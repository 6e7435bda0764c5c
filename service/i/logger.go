package i

// Logger is the logging contract shared by services and controllers.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)

	// WithField returns a Logger that appends key=value to every line.
	WithField(key string, value interface{}) Logger
}
