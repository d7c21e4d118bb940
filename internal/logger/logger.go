// internal/logger/logger.go
// Logger global berbasis logrus (JSON default, text untuk lokal)

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log dipakai seluruh paket; Init dipanggil sekali dari main.
var Log = logrus.New()

// Init mengatur level & format. Level tidak valid -> info.
// format "text" memakai TextFormatter, selain itu JSON.
func Init(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)

	if format == "text" {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}

// With shortcut untuk entry ber-field.
func With(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
