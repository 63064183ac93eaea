package core

// Logger is the subset of the leveled logger used by rendering components
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{})  {}
func (NopLogger) Infof(string, ...interface{})   {}
func (NopLogger) Noticef(string, ...interface{}) {}
