// Package logger provides the prefixed, colored application logger.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/sirupsen/logrus"
)

const (
	errorColor   = "\033[31m"
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	colorReset   = "\033[0m"
)

var ErrNilWriter = errors.New("logger output writer is nil")

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger that tags every line with prefix, printed in color.
func New(prefix string, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

// WithField returns a Logger that appends key=value to every line.
func (l *Logger) WithField(key string, value interface{}) i.Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a message about a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders "[PREFIX] [LEVEL] time message key=value".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	levelColor := infoColor
	switch e.Level {
	case logrus.WarnLevel:
		levelColor = warningColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = errorColor
	}

	fmt.Fprintf(&b, "%s[%s]%s %s[%s]%s %s %s",
		f.color, f.prefix, colorReset,
		levelColor, strings.ToUpper(e.Level.String()), colorReset,
		e.Time.Format(time.RFC3339), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
