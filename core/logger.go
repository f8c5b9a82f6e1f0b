package core

// Logger is implemented by the services/logger package.
// expected args: error, map[string]interface{} (extra data), or any domain value the implementation knows how to report.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
