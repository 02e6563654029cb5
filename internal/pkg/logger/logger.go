// Package logger provides the application wide logging abstraction.
//
// Loggers are created once through InitLogger from LoggerSettings and shared
// through GetLogger. Console loggers write text records, file loggers write
// JSON records to a rotated file.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
	// With returns a logger that adds the key/value pairs to every record.
	With(keyvals ...interface{}) Logger
}
