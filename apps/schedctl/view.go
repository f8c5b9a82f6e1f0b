package main

import (
	"flag"

	"github.com/pkg/errors"

	"github.com/trezcool/timetable/apps"
	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

var errNegative = errors.New("must not be negative")

// filterFlags are the listing filters shared by week and groups.
type filterFlags struct {
	filter schedule.Filter
	day    string
}

func addFilterFlags(fs *flag.FlagSet) *filterFlags {
	ff := new(filterFlags)
	fs.StringVar(&ff.filter.InstructorID, "instructor", "", "only show this instructor's schedules")
	fs.StringVar(&ff.filter.Room, "room", "", "only show this room's schedules")
	fs.StringVar(&ff.filter.Section, "section", "", "only show this section's schedules")
	fs.StringVar(&ff.day, "day", "", "only show this day's schedules")
	fs.IntVar(&ff.filter.Offset, "offset", 0, "skip this many matching schedules")
	fs.IntVar(&ff.filter.Limit, "limit", 0, "show at most this many matching schedules, 0 for all")
	return ff
}

func (ff *filterFlags) build() (schedule.Filter, error) {
	filter := ff.filter
	filter.InstructorID = core.CleanString(filter.InstructorID)
	filter.Room = core.CleanString(filter.Room)
	filter.Section = core.CleanString(filter.Section)
	if ff.day != "" {
		day, err := schedule.ParseDay(ff.day)
		if err != nil {
			return schedule.Filter{}, apps.NewArgumentError("day", err)
		}
		filter.Day = day
	}
	if filter.Offset < 0 {
		return schedule.Filter{}, apps.NewArgumentError("offset", errNegative)
	}
	if filter.Limit < 0 {
		return schedule.Filter{}, apps.NewArgumentError("limit", errNegative)
	}
	return filter, nil
}

// selectSlots applies the filter, saying so when it leaves nothing to show.
func (cli *commandLine) selectSlots(ls *loadedSchedules, filter schedule.Filter) schedule.Set {
	matched := filter.Apply(ls.set)
	if len(matched) == 0 && !filter.IsEmpty() {
		cli.printf("no schedule matches the filter\n")
	}
	return matched
}

func (cli *commandLine) week(args []string) error {
	fs, schedules := cli.newFlagSet("week")
	ff := addFilterFlags(fs)
	twelveHour := fs.Bool("12h", cli.conf.Schedule.TwelveHour, "show 12-hour times")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	filter, err := ff.build()
	if err != nil {
		return err
	}

	ls, err := cli.loadValid(*schedules)
	if err != nil {
		return err
	}

	days := schedule.Days
	if filter.Day != 0 {
		days = []schedule.Day{filter.Day}
	}
	week := schedule.WeeklyView(cli.selectSlots(ls, filter))
	for _, day := range days {
		cli.printf("%s\n", cli.clr.Bold(day.Full()))
		if len(week[day]) == 0 {
			cli.printf("  -\n")
			continue
		}
		for _, s := range week[day] {
			cli.printf("  %s  %s [%s]  %s  %s\n",
				schedule.FormatRange(s.StartMinute, s.EndMinute, *twelveHour),
				ls.dir.SubjectLabel(s.SubjectCode), s.Section, s.Room, ls.dir.InstructorName(s.InstructorID))
		}
	}
	return nil
}

func (cli *commandLine) groups(args []string) error {
	fs, schedules := cli.newFlagSet("groups")
	by := fs.String("by", "", "instructor, room or section")
	ff := addFilterFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *by == "" {
		fs.Usage()
		return errHelp
	}
	key, err := schedule.ParseGroupKey(*by)
	if err != nil {
		return apps.NewArgumentError("by", err)
	}
	filter, err := ff.build()
	if err != nil {
		return err
	}

	ls, err := cli.loadValid(*schedules)
	if err != nil {
		return err
	}

	groups := schedule.GroupBy(cli.selectSlots(ls, filter), key)
	for _, name := range schedule.SortedKeys(groups) {
		label := name
		if key == schedule.ByInstructor {
			label = ls.dir.InstructorName(name)
		}
		cli.printf("%s %s (%d)\n", key, cli.clr.Bold(label), len(groups[name]))
		for _, s := range groups[name] {
			cli.printf("  %s\n", s)
		}
	}
	return nil
}

// free lists the rooms with nothing scheduled during a window. Without -rooms, the rooms in use make up the catalog.
func (cli *commandLine) free(args []string) error {
	fs, schedules := cli.newFlagSet("free")
	rooms := fs.String("rooms", "", "comma separated room catalog")
	dayArg := fs.String("day", "", "day of the week")
	startArg := fs.String("start", "", "window start time")
	endArg := fs.String("end", "", "window end time")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *dayArg == "" || *startArg == "" || *endArg == "" {
		fs.Usage()
		return errHelp
	}

	day, err := schedule.ParseDay(*dayArg)
	if err != nil {
		return apps.NewArgumentError("day", err)
	}
	start, err := schedule.ParseTime(*startArg)
	if err != nil {
		return apps.NewArgumentError("start", err)
	}
	end, err := schedule.ParseTime(*endArg)
	if err != nil {
		return apps.NewArgumentError("end", err)
	}
	if start >= end {
		return apps.NewArgumentError("end", schedule.ErrInvertedRange)
	}

	ls, err := cli.loadValid(*schedules)
	if err != nil {
		return err
	}

	catalog := core.SplitList(*rooms)
	if len(catalog) == 0 {
		catalog = ls.rooms()
	}
	free := schedule.FreeRooms(ls.set, catalog, day, start, end)
	if len(free) == 0 {
		cli.printf("no free room on %s %s\n", day.Full(), schedule.FormatRange(start, end, cli.conf.Schedule.TwelveHour))
		return nil
	}
	for _, room := range free {
		cli.printf("%s\n", room)
	}
	return nil
}
