package main

import (
	"github.com/pkg/errors"

	"github.com/trezcool/timetable/apps"
	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

var errWhenWithTimes = errors.New("cannot be combined with -day, -start or -end")

// check normalizes a candidate entry and reports the stored schedules it clashes with.
// Clashes fail the command unless the conflict policy is "warn".
func (cli *commandLine) check(args []string) error {
	fs, schedules := cli.newFlagSet("check")
	var raw schedule.RawSlot
	fs.StringVar(&raw.Day, "day", "", "day of the week, e.g. Monday or Mon")
	fs.StringVar(&raw.Start, "start", "", "start time, e.g. 8:00am or 08:00")
	fs.StringVar(&raw.End, "end", "", "end time, e.g. 9:30am or 09:30")
	fs.StringVar(&raw.Room, "room", "", "room")
	fs.StringVar(&raw.Section, "section", "", "section")
	fs.StringVar(&raw.InstructorID, "instructor", "", "instructor ID")
	fs.StringVar(&raw.SubjectCode, "subject", "", "subject code")
	fs.StringVar(&raw.ID, "id", "", "ID of the entry being edited, its stored version is not checked against")
	when := fs.String("when", "", "day and time range in one string, e.g. \"Monday, 8:00am-9:00am\"; replaces -day, -start and -end")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if raw == (schedule.RawSlot{}) && *when == "" {
		fs.Usage()
		return errHelp
	}

	if *when != "" {
		if raw.Day != "" || raw.Start != "" || raw.End != "" {
			return apps.NewArgumentError("when", errWhenWithTimes)
		}
		fromWhen, err := schedule.RawFromSlotString(*when, raw.Room, raw.Section, raw.InstructorID, raw.SubjectCode)
		if err != nil {
			cli.printf("%s invalid schedule\n", cli.clr.Red("ERROR"))
			cli.printFieldErrors(err)
			return apps.NewArgumentError("when", err)
		}
		fromWhen.ID = raw.ID
		raw = fromWhen
	}

	candidate, err := schedule.Normalize(raw)
	if err != nil {
		cli.printf("%s invalid schedule\n", cli.clr.Red("ERROR"))
		cli.printFieldErrors(err)
		return err
	}

	ls, err := cli.loadValid(*schedules)
	if err != nil {
		return err
	}

	conflicts := schedule.ExplainConflicts(candidate, ls.set)
	if len(conflicts) == 0 {
		cli.printf("%s %s\n", cli.clr.Green("OK"), candidate)
		return nil
	}

	cli.printf("%s %s clashes with %d schedule(s)\n", cli.clr.Red("CONFLICT"), candidate, len(conflicts))
	for _, c := range conflicts {
		cli.printf("  %s\n", cli.describeConflict(c, cli.conf.Schedule.TwelveHour))
	}

	if cli.conf.Schedule.ConflictPolicy == core.PolicyWarn {
		logArgs := make([]interface{}, 0, len(conflicts)+1)
		logArgs = append(logArgs, candidate)
		for _, c := range conflicts {
			logArgs = append(logArgs, c)
		}
		cli.logger.Warn("schedule conflicts accepted", logArgs...)
		return nil
	}
	return errConflict
}
