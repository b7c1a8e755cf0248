package core

// Logger receives diagnostic output such as render progress
type Logger interface {
	Printf(format string, args ...interface{})
}
