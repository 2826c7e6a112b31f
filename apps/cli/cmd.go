package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/masomo-ui/core/datefmt"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	fmtr    *datefmt.Formatter
	in      io.Reader
	inFd    int
	out     io.Writer
	errOut  io.Writer
	strict  bool
	command string
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.errOut, "Usage: masomo-fmt [-strict] COMMAND [flags] [VALUE...]")
	_, _ = fmt.Fprintln(cli.errOut, "  date [-locale L] [-year K] [-month K] [-day K] DATE - localized date (default: \"December 25, 2024\")")
	_, _ = fmt.Fprintln(cli.errOut, "  shortdate DATE                                      - US short date (\"Jan 1, 2024\")")
	_, _ = fmt.Fprintln(cli.errOut, "  time HH:MM                                          - 12-hour clock (\"1:05 PM\")")
	_, _ = fmt.Fprintln(cli.errOut, "  filetype MIME                                       - attachment label (\"PDF\")")
	_, _ = fmt.Fprintln(cli.errOut, "  pastdue DATE                                        - true when DATE is in the past")
	_, _ = fmt.Fprintln(cli.errOut, "  datetime DATE TIME                                  - time of day (\"03:04 PM\")")
	_, _ = fmt.Fprintln(cli.errOut, "  weekday [-locale L] DATE                            - localized weekday (\"Monday\")")
	_, _ = fmt.Fprintln(cli.errOut, "Values are read line by line from stdin when none is given and stdin is not a terminal.")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	root := flag.NewFlagSet("masomo-fmt", flag.ContinueOnError)
	root.SetOutput(io.Discard)
	root.BoolVar(&cli.strict, "strict", false, "Fail on invalid input instead of printing a placeholder.")
	if err := root.Parse(args[1:]); err != nil {
		cli.printUsage()
		return errHelp
	}
	if root.NArg() == 0 {
		cli.printUsage()
		return errHelp
	}
	cli.command, args = root.Arg(0), root.Args()[1:]

	cmd := flag.NewFlagSet(cli.command, flag.ContinueOnError)
	cmd.SetOutput(cli.errOut)
	locale := cmd.String("locale", "", "CLDR locale, e.g. en, en_US, fr, fr_CD.")
	year := cmd.String("year", "", "Year style: numeric | 2-digit.")
	month := cmd.String("month", "", "Month style: numeric | 2-digit | long | short | narrow.")
	day := cmd.String("day", "", "Day style: numeric | 2-digit.")

	var handle func(fields []string) (string, error)
	argc := 1
	switch cli.command {
	case "date":
		handle = func(v []string) (string, error) {
			return cli.formatDate(*locale, v[0], datefmt.DateOptions{Year: *year, Month: *month, Day: *day})
		}
	case "shortdate":
		handle = func(v []string) (string, error) { return cli.formatShortDate(v[0]) }
	case "time":
		handle = func(v []string) (string, error) { return cli.formatTime(v[0]) }
	case "filetype":
		handle = func(v []string) (string, error) { return cli.fileType(v[0]) }
	case "pastdue":
		handle = func(v []string) (string, error) { return cli.pastDue(v[0]) }
	case "datetime":
		argc = 2
		handle = func(v []string) (string, error) { return cli.formatDateTime(v[0], v[1]) }
	case "weekday":
		handle = func(v []string) (string, error) { return cli.weekday(*locale, v[0]) }
	default:
		cli.printUsage()
		return errHelp
	}

	if err := cmd.Parse(args); err != nil {
		return errHelp
	}
	if values := cmd.Args(); len(values) > 0 {
		for len(values) >= argc {
			if err := cli.handle(handle, argc, values[:argc]); err != nil {
				return err
			}
			values = values[argc:]
		}
		if len(values) > 0 {
			return cli.handle(handle, argc, values)
		}
		return nil
	}
	if isTerminalFunc(cli.inFd) {
		cmd.Usage()
		return errHelp
	}

	// batch mode: one value (or "DATE TIME" pair) per line
	scanner := bufio.NewScanner(cli.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values := []string{line}
		if argc > 1 {
			values = strings.Fields(line)
		}
		if err := cli.handle(handle, argc, values); err != nil {
			return err
		}
	}
	return pkgerrors.Wrap(scanner.Err(), "reading stdin")
}

func (cli *commandLine) handle(handle func([]string) (string, error), argc int, values []string) error {
	if len(values) < argc {
		return fmt.Errorf("%s expects %d values (got %d)", cli.command, argc, len(values))
	}
	res, err := handle(values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, res)
	return err
}

func (cli *commandLine) formatter(locale string) *datefmt.Formatter {
	if locale == "" {
		return cli.fmtr
	}
	return cli.fmtr.WithLocale(locale)
}

func (cli *commandLine) formatDate(locale, date string, opts datefmt.DateOptions) (string, error) {
	f := cli.formatter(locale)
	if cli.strict {
		return f.Strict().FormatDate(date, opts)
	}
	return f.FormatDate(date, opts), nil
}

func (cli *commandLine) formatShortDate(date string) (string, error) {
	if cli.strict {
		return cli.fmtr.Strict().FormatShortDate(date)
	}
	return cli.fmtr.FormatShortDate(date), nil
}

func (cli *commandLine) formatTime(time24 string) (string, error) {
	if cli.strict {
		return cli.fmtr.Strict().FormatTime(time24)
	}
	return cli.fmtr.FormatTime(time24), nil
}

func (cli *commandLine) fileType(mimeType string) (string, error) {
	if cli.strict {
		return cli.fmtr.Strict().GetFileType(mimeType)
	}
	return cli.fmtr.GetFileType(mimeType), nil
}

func (cli *commandLine) pastDue(date string) (string, error) {
	if cli.strict {
		past, err := cli.fmtr.Strict().IsPastDue(date)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(past), nil
	}
	return strconv.FormatBool(cli.fmtr.IsPastDue(date)), nil
}

func (cli *commandLine) formatDateTime(date, time string) (string, error) {
	if cli.strict {
		return cli.fmtr.Strict().FormatDateTime(date, time)
	}
	return cli.fmtr.FormatDateTime(date, time), nil
}

func (cli *commandLine) weekday(locale, date string) (string, error) {
	f := cli.formatter(locale)
	if cli.strict {
		return f.Strict().GetDayOfWeek(date)
	}
	return f.GetDayOfWeek(date), nil
}
