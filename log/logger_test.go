package log

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	now    = time.Now().Unix()
	errMsg = fmt.Errorf("error message")
)

// Fatal and Fatalf are not tested (they exit)
func TestLogger(t *testing.T) {
	SetLogger(6, false, true)

	WithFields("timestamp", now, "err", errMsg).Tracef("test WithFields Tracef at %v", now)
	WithFields("timestamp", now, "err", errMsg).Infof("test WithFields Infof at %v", now)

	Trace("test Trace", "timestamp", now, "err", errMsg)
	Debug("test Debug", "timestamp", now, "err", errMsg)
	Debugf("test Debugf, timestamp=%v err=%v", now, errMsg)
	Info("test Info", "timestamp", now, "err", errMsg)
	Infof("test Infof, timestamp=%v err=%v", now, errMsg)
	Warn("test Warn", "timestamp", now, "err", errMsg)
	Warnf("test Warnf, timestamp=%v err=%v", now, errMsg)
	Error("test Error", "timestamp", now, "err", errMsg)
	Errorf("test Errorf, timestamp=%v err=%v", now, errMsg)

	assert.Panics(t, func() { Panic("test Panic", "timestamp", now, "err", errMsg) }, "not panic")
}

func TestWithFieldsOddArgs(t *testing.T) {
	SetLogger(4, true, false)
	entry := WithFields("key1", "val1", "dangling")
	assert.Equal(t, "val1", entry.Data["key1"])
	_, exist := entry.Data["dangling"]
	assert.False(t, exist)
}
