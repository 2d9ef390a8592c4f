package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter forwards the lines of chi's DefaultLogFormatter into logrus
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	if len(a) == 0 {
		return
	}
	if len(a) == 1 {
		logrus.Debug(strings.TrimRight(fmt.Sprint(a[0]), "\n"))
		return
	}
	logrus.Debugf(fmt.Sprint(a[0]), a[1:]...)
}
