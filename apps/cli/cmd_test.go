package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-ui/core"
	"github.com/trezcool/masomo-ui/core/datefmt"
)

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func setup(stdin string) (*commandLine, *bytes.Buffer) {
	var out bytes.Buffer
	cli := &commandLine{
		fmtr:   datefmt.New(datefmt.WithLocation(time.UTC), datefmt.WithClock(func() time.Time { return now })),
		in:     strings.NewReader(stdin),
		out:    &out,
		errOut: io.Discard,
	}
	return cli, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	stdin      string
	terminal   bool
	want       string
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "only flags", args: []string{"-strict"}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"-lol"}, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no value on a terminal", args: []string{"time"}, terminal: true, wantErr: errHelp},
		{name: "date", args: []string{"date", "2024-12-25"}, want: "December 25, 2024\n"},
		{name: "date with options", args: []string{"date", "-year", "numeric", "-month", "short", "-day", "numeric", "2024-12-25"}, want: "Dec 25, 2024\n"},
		{name: "date in french", args: []string{"date", "-locale", "fr", "2024-12-25"}, want: "25 décembre 2024\n"},
		{name: "invalid date", args: []string{"date", "2024-02-30"}, want: "Invalid Date\n"},
		{name: "shortdate", args: []string{"shortdate", "2024-01-01"}, want: "Jan 1, 2024\n"},
		{name: "time", args: []string{"time", "13:05"}, want: "1:05 PM\n"},
		{name: "several times", args: []string{"time", "00:30", "23:15"}, want: "12:30 AM\n11:15 PM\n"},
		{name: "filetype", args: []string{"filetype", "application/pdf"}, want: "PDF\n"},
		{name: "pastdue", args: []string{"pastdue", "2024-04-30"}, want: "true\n"},
		{name: "not pastdue", args: []string{"pastdue", "2024-05-02"}, want: "false\n"},
		{name: "datetime", args: []string{"datetime", "2024-01-01", "15:04"}, want: "03:04 PM\n"},
		{name: "datetime missing time", args: []string{"datetime", "2024-01-01"}, wantErrStr: "datetime expects 2 values (got 1)"},
		{name: "datetime leftover", args: []string{"datetime", "2024-01-01", "15:04", "2024-01-02"}, want: "03:04 PM\n", wantErrStr: "datetime expects 2 values (got 1)"},
		{name: "weekday", args: []string{"weekday", "2024-01-01"}, want: "Monday\n"},
		{name: "weekday in french", args: []string{"weekday", "-locale", "fr_CD", "2024-01-01"}, want: "lundi\n"},
		{name: "stdin", args: []string{"time"}, stdin: "00:30\n\n12:00\n23:15\n", want: "12:30 AM\n12:00 PM\n11:15 PM\n"},
		{name: "stdin pairs", args: []string{"datetime"}, stdin: "2024-01-01 08:00\n2024-01-01 20:45\n", want: "08:00 AM\n08:45 PM\n"},
		{name: "strict ok", args: []string{"-strict", "filetype", "image/png"}, want: "PNG\n"},
		{name: "strict invalid time", args: []string{"-strict", "time", "9:5"}, wantErr: datefmt.ErrInvalidTime},
		{name: "strict invalid date", args: []string{"-strict", "weekday", "2024-02-30"}, wantErr: datefmt.ErrInvalidDate},
		{name: "strict unknown filetype", args: []string{"-strict", "filetype", "noslash"}, wantErr: datefmt.ErrUnknownFileType},
		{name: "strict pastdue", args: []string{"-strict", "pastdue", "2024-02-30"}, wantErr: datefmt.ErrInvalidDate},
		{name: "strict stops at first error", args: []string{"-strict", "time"}, stdin: "10:00\nlol\n11:00\n", want: "10:00 AM\n", wantErr: datefmt.ErrInvalidTime},
	}
	origIsTerminal := isTerminalFunc
	defer func() { isTerminalFunc = origIsTerminal }()

	for _, tt := range tests {
		args := append([]string{"masomo-fmt"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			isTerminalFunc = func(fd int) bool { return tt.terminal }

			cli, out := setup(tt.stdin)
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			case tt.wantErrStr != "":
				assert.EqualError(t, err, tt.wantErrStr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func Test_commandLine_strictOptions(t *testing.T) {
	origIsTerminal := isTerminalFunc
	defer func() { isTerminalFunc = origIsTerminal }()
	isTerminalFunc = func(int) bool { return true }
	cli, out := setup("")

	err := cli.run([]string{"masomo-fmt", "-strict", "date", "-month", "medium", "2024-12-25"})
	vErr, ok := core.AsValidationError(err)
	if assert.True(t, ok, "err = %v", err) {
		msg, found := vErr.Field("month")
		assert.True(t, found)
		assert.Equal(t, "month must be one of numeric, 2-digit, long, short or narrow", msg)
	}
	assert.Empty(t, out.String())
}
