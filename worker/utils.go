package worker

import (
	"time"

	"github.com/3dpass/bridge-core/log"
)

func logWorker(job, subject string, context ...interface{}) {
	log.Info("["+job+"] "+subject, context...)
}

func logWorkerError(job, subject string, err error, context ...interface{}) {
	fields := []interface{}{"err", err}
	fields = append(fields, context...)
	log.Error("["+job+"] "+subject, fields...)
}

func restInJob(duration time.Duration) {
	time.Sleep(duration)
}
