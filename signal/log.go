// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logMtx sync.RWMutex
	logger logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger replaces the logger used by signals created without WithLogger.
// Passing nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	logMtx.Lock()
	defer logMtx.Unlock()

	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

func defaultLogger() logrus.FieldLogger {
	logMtx.RLock()
	defer logMtx.RUnlock()

	return logger
}
