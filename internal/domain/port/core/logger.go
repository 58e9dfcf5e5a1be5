package core

// LogLevel orders log severities from the most to the least verbose
type LogLevel int

// Severities understood by every Logger
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Fields are the structured key/value pairs attached to one log line.
// Keys are snake_case; "request_id" correlates lines of one HTTP request.
type Fields = map[string]any

// Logger is the structured logger handed to every component
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Warn(message string, fields Fields)
	Error(message string, fields Fields)
	// Flush writes out buffered entries; call it once before the process exits
	Flush() error
}
