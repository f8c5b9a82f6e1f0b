package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/timetable/core"
	"github.com/trezcool/timetable/core/schedule"
)

var (
	readFileFunc = os.ReadFile                                 // mockable
	newIDFunc    = func() string { return uuid.New().String() } // mockable
)

// dataset is the content of a schedules file: either a bare list of schedule records,
// or an object also carrying the subjects and instructors the records refer to.
type dataset struct {
	Records     []schedule.RawSlot    `json:"schedules"`
	Subjects    []schedule.Subject    `json:"subjects"`
	Instructors []schedule.Instructor `json:"instructors"`
}

// readDataset decodes a schedules file. Records without an ID get a generated one.
func readDataset(path string) (*dataset, error) {
	data, err := readFileFunc(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading schedules")
	}

	ds := new(dataset)
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &ds.Records)
	} else {
		err = json.Unmarshal(data, ds)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	for i := range ds.Records {
		if core.CleanString(ds.Records[i].ID) == "" {
			ds.Records[i].ID = newIDFunc()
		}
	}
	return ds, nil
}

type loadedSchedules struct {
	set     schedule.Set
	indexes []int // record index of each slot of set
	invalid []schedule.RecordError
	dir     *schedule.Directory

	hasSubjects bool
}

// rooms lists the distinct rooms in use, sorted.
func (ls *loadedSchedules) rooms() []string {
	return schedule.SortedKeys(schedule.GroupBy(ls.set, schedule.ByRoom))
}

func (cli *commandLine) load(path string) (*loadedSchedules, error) {
	ds, err := readDataset(path)
	if err != nil {
		return nil, err
	}

	set, invalid := schedule.NormalizeAll(ds.Records)
	bad := make(map[int]bool, len(invalid))
	for _, rErr := range invalid {
		bad[rErr.Index] = true
	}
	indexes := make([]int, 0, len(set))
	for i := range ds.Records {
		if !bad[i] {
			indexes = append(indexes, i)
		}
	}

	return &loadedSchedules{
		set:     set,
		indexes: indexes,
		invalid: invalid,
		dir:     schedule.NewDirectory(ds.Subjects, ds.Instructors),

		hasSubjects: len(ds.Subjects) > 0,
	}, nil
}

// loadValid loads the schedules and logs the records that had to be skipped.
func (cli *commandLine) loadValid(path string) (*loadedSchedules, error) {
	ls, err := cli.load(path)
	if err != nil {
		return nil, err
	}
	for _, rErr := range ls.invalid {
		cli.logger.Warn("skipping invalid schedule record", rErr, map[string]interface{}{"file": path})
	}
	return ls, nil
}
