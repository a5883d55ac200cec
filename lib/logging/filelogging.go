package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger logs to STDOUT, or to a dated file next to logFilePath when it is set.
func Logger(logFilePath string) *lecho.Logger {
	var out io.Writer = os.Stdout
	var fileErr error
	if logFilePath != "" {
		file, err := OpenLogFile(logFilePath, time.Now())
		if err == nil {
			out = file
		}
		fileErr = err
	}
	logger := lecho.New(
		out,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if fileErr != nil {
		logger.Errorf("failed to open log file, logging to STDOUT: %v", fileErr)
	}
	return logger
}

// LogFileName inserts the day into path, "market.log" becomes "market-2006-01-02.log".
func LogFileName(path string, day time.Time) string {
	extension := filepath.Ext(path)
	if extension == "" {
		extension = ".log"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + day.Format("-2006-01-02") + extension
}

// OpenLogFile appends to the log file of day, so restarts keep earlier output.
func OpenLogFile(path string, day time.Time) (*os.File, error) {
	return os.OpenFile(LogFileName(path, day), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
}
