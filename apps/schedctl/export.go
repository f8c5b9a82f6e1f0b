package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/timetable/apps"
	"github.com/trezcool/timetable/core/schedule"
	"github.com/trezcool/timetable/services/export"
)

func (cli *commandLine) export(args []string) error {
	fs, schedules := cli.newFlagSet("export")
	out := fs.String("out", "", "xlsx file to write")
	by := fs.String("by", "", "one sheet per instructor, room or section")
	twelveHour := fs.Bool("12h", cli.conf.Schedule.TwelveHour, "write 12-hour times")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return errHelp
	}

	opts := export.Options{TwelveHour: *twelveHour}
	if *by != "" {
		key, err := schedule.ParseGroupKey(*by)
		if err != nil {
			return apps.NewArgumentError("by", err)
		}
		opts.GroupBy = key
	}

	ls, err := cli.loadValid(*schedules)
	if err != nil {
		return err
	}
	opts.Directory = ls.dir

	f, err := os.Create(*out)
	if err != nil {
		return errors.Wrap(err, "creating workbook")
	}
	if err := export.WriteWorkbook(f, ls.set, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing workbook")
	}
	cli.printf("%s %d schedule(s) written to %s\n", cli.clr.Green("OK"), len(ls.set), *out)
	return nil
}
