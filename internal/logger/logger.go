package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// RedactHook masks secret fields, such as the settings api key, before an
// entry is written.
type RedactHook struct {
	Fields []string
}

// NewRedactHook masks the settings api key in both naming styles.
func NewRedactHook() *RedactHook {
	return &RedactHook{Fields: []string{"apiKey", "api_key"}}
}

func (h *RedactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *RedactHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		for _, secret := range h.Fields {
			if strings.EqualFold(key, secret) {
				if s, ok := value.(string); ok && s == "" {
					continue
				}
				entry.Data[key] = "[redacted]"
			}
		}
	}
	return nil
}

// SetupLogger configures the global logrus logger. Logs go to stderr so
// stdout only carries command results.
func SetupLogger(level string) error {
	return setup(logrus.StandardLogger(), os.Stderr, level)
}

func setup(l *logrus.Logger, out io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.ReplaceHooks(make(logrus.LevelHooks))
	l.AddHook(NewRedactHook())
	return nil
}
