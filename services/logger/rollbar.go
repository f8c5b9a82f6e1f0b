package logsvc

import (
	"log"
	"os"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

var (
	waitFunc = rollbar.Wait // mockable
	exitFunc = os.Exit      // mockable
)

type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, schedule.Slot, schedule.Conflict
// Slots and conflicts are reported as extra data, merged into the first map argument when there is one.
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var (
		extras    map[string]interface{}
		slots     []schedule.Slot
		conflicts []schedule.Conflict
	)
	newArgs := make([]interface{}, 0, len(args)+2)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		switch v := arg.(type) {
		case schedule.Slot:
			slots = append(slots, v)
		case schedule.Conflict:
			conflicts = append(conflicts, v)
		case map[string]interface{}:
			if extras == nil {
				extras = v
				continue
			}
			newArgs = append(newArgs, v)
		default:
			newArgs = append(newArgs, arg)
		}
	}
	if len(slots) > 0 || len(conflicts) > 0 {
		merged := make(map[string]interface{}, len(extras)+2)
		for k, v := range extras {
			merged[k] = v
		}
		if len(slots) > 0 {
			merged["slots"] = schedule.Set(slots).Raw()
		}
		if len(conflicts) > 0 {
			merged["conflicts"] = conflicts
		}
		extras = merged
	}
	if extras != nil {
		newArgs = append(newArgs, extras)
	}
	return newArgs
}

func (l RollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(msg, args)
}

// Fatal reports, waits for the report to be sent, then exits with status 1.
func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(msg, args)
	l.Flush()
	exitFunc(1)
}

// Flush waits for queued reports to be sent.
func (l RollbarLogger) Flush() {
	waitFunc()
}
