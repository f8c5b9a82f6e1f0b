package main

import (
	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

// audit checks a whole schedules file: records that do not normalize, and clashes between the others.
func (cli *commandLine) audit(args []string) error {
	fs, schedules := cli.newFlagSet("audit")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ls, err := cli.load(*schedules)
	if err != nil {
		return err
	}

	for _, rErr := range ls.invalid {
		cli.printf("%s record %d (id %s): %v\n", cli.clr.Yellow("INVALID"), rErr.Index, rErr.Raw.ID, rErr.Err)
	}

	entries := schedule.AuditConflicts(ls.set)
	for _, e := range entries {
		cli.printf("%s record %d (id %s) clashes with record %d (id %s)\n",
			cli.clr.Red("CONFLICT"), ls.indexes[e.Index], e.Slot.ID, ls.indexes[e.ConflictIndex], e.Conflict.Slot.ID)
		cli.printf("  %s\n", e.Slot)
		cli.printf("  %s\n", cli.describeConflict(e.Conflict, cli.conf.Schedule.TwelveHour))
	}

	// subjects are only checked when the file lists them
	if ls.hasSubjects {
		for _, code := range ls.dir.UnknownSubjects(ls.set) {
			cli.printf("%s subject %s is not in the subjects list\n", cli.clr.Yellow("UNKNOWN"), code)
		}
	}

	total := len(ls.set) + len(ls.invalid)
	summary := cli.clr.Green("OK")
	if len(ls.invalid) > 0 || len(entries) > 0 {
		summary = cli.clr.Red("FAILED")
	}
	cli.printf("%s %d record(s), %d invalid, %d conflict(s)\n", summary, total, len(ls.invalid), len(entries))

	if len(ls.invalid) == 0 && len(entries) == 0 {
		return nil
	}
	if cli.conf.Schedule.ConflictPolicy == core.PolicyWarn {
		cli.logger.Warn("schedule audit found problems", map[string]interface{}{
			"file":      *schedules,
			"invalid":   len(ls.invalid),
			"conflicts": len(entries),
		})
		return nil
	}
	return errAudit
}
