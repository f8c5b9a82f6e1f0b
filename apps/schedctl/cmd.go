package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp     = errors.New("help provided")
	errConflict = errors.New("schedule conflicts found")
	errAudit    = errors.New("schedule audit failed")
)

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	out    io.Writer
	clr    *color.Color
}

// newCommandLine builds the CLI. Output is colored only when asked for by the config and written to a terminal.
func newCommandLine(conf *core.Config, logger core.Logger, out io.Writer, terminal bool) *commandLine {
	clr := color.New()
	if conf.Schedule.Color && terminal {
		clr.Enable()
	} else {
		clr.Disable()
	}
	return &commandLine{conf: conf, logger: logger, out: out, clr: clr}
}

func (cli *commandLine) printUsage() {
	cli.printf("Usage:\n")
	cli.printf("  check -day D -start T -end T -room R -section S -instructor I -subject C [-id ID] - check a schedule entry for conflicts\n")
	cli.printf("  check -when \"Monday, 8:00am-9:00am\" -room R -section S -instructor I -subject C [-id ID] - same, with the day and times in one string\n")
	cli.printf("  audit - report invalid records and conflicts within the schedules file\n")
	cli.printf("  week [FILTERS] [-12h] - print the weekly view\n")
	cli.printf("  groups -by instructor|room|section [FILTERS] - print schedules grouped by instructor, room or section\n")
	cli.printf("  free -day D -start T -end T [-rooms R1,R2] - list rooms free during a time window\n")
	cli.printf("  export -out FILE.xlsx [-by instructor|room|section] [-12h] - write the weekly view as a workbook\n")
	cli.printf("FILTERS: [-instructor I] [-room R] [-section S] [-day D] [-offset N] [-limit N]\n")
	cli.printf("Every command reads its schedules from -schedules FILE (default %q).\n", cli.conf.Schedule.File)
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "check":
		return cli.check(args[2:])
	case "audit":
		return cli.audit(args[2:])
	case "week":
		return cli.week(args[2:])
	case "groups":
		return cli.groups(args[2:])
	case "free":
		return cli.free(args[2:])
	case "export":
		return cli.export(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// newFlagSet returns a flag set carrying the -schedules flag shared by every command.
func (cli *commandLine) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	schedules := fs.String("schedules", cli.conf.Schedule.File, "JSON file holding the schedule records")
	return fs, schedules
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

// printFieldErrors lists the offending fields of a normalization error.
func (cli *commandLine) printFieldErrors(err error) {
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	for _, fld := range vErr.Fields {
		cli.printf("  %s: %s\n", cli.clr.Yellow(fld.Field), fld.Error)
	}
}

func (cli *commandLine) describeConflict(c schedule.Conflict, twelveHour bool) string {
	resources := make([]string, 0, len(c.Resources))
	for _, r := range c.Resources {
		resources = append(resources, string(r))
	}
	return fmt.Sprintf("%s: same %s, overlap %s (%d min)",
		c.Slot, strings.Join(resources, ", "), schedule.FormatRange(c.OverlapStart, c.OverlapEnd, twelveHour), c.Minutes())
}
