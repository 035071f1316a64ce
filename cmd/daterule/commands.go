package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/reugn/go-daterule/calendar"
	"github.com/reugn/go-daterule/daterule"
	"github.com/spf13/cobra"
)

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(calendar.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return date, nil
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "match <rule> <date>",
		Short:   "Check whether a date satisfies a rule",
		Example: `  daterule match 2021,2022/feb,mar/sat 2021-02-06`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[1])
			if err != nil {
				return err
			}
			ok, err := a.matcher().Match(date, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newDatesCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "dates <rule> <start> <end>",
		Short:   "List the dates in a range that satisfy a rule",
		Example: `  daterule dates 2022/m/t1 2022-01-01 2022-12-31 --holidays us`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(args[1])
			if err != nil {
				return err
			}
			end, err := parseDate(args[2])
			if err != nil {
				return err
			}

			m := a.matcher()
			rule, err := m.Parse(args[0])
			if err != nil {
				return err
			}
			count := 0
			for date, err := range m.Dates(rule, start, end) {
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), date.Format(calendar.DateLayout))
				count++
				if limit > 0 && count == limit {
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many dates (0 for no limit)")
	return cmd
}

func newNthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nth <year> <month> <n>",
		Short: "Print the Nth business day of a month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values [3]int
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q", arg)
				}
				values[i] = v
			}
			if values[1] < 1 || values[1] > 12 {
				return fmt.Errorf("invalid month %d", values[1])
			}
			date, err := daterule.NthBusinessDay(values[0], time.Month(values[1]), values[2], a.calendar)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.Format(calendar.DateLayout))
			return nil
		},
	}
}

func newTimeCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:     "time <rule> <hh:mm:ss>",
		Short:   "Check whether a time of day satisfies a time rule",
		Example: `  daterule time 2h:0,30m:0 14:30:00`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := daterule.ParseTimeRule(args[0])
			if err != nil {
				return err
			}
			at, err := time.Parse(time.TimeOnly, args[1])
			if err != nil {
				return fmt.Errorf("invalid time %q, expected hh:mm:ss", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), rule.Match(at))
			return nil
		},
	}
}

func newNextCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "next <rule> <cron> [from]",
		Short:   "Print upcoming fire times of a rule and cron time expression",
		Example: `  daterule next y/m/t1 "30 9 * * *" 2022-01-01 --count 3`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := time.Now().UTC()
			if len(args) == 3 {
				date, err := parseDate(args[2])
				if err != nil {
					return err
				}
				from = date
			}
			trigger, err := daterule.NewRuleTrigger(args[0], args[1],
				daterule.WithTriggerMatcher(a.matcher()))
			if err != nil {
				return err
			}
			a.logger.Debug("Created trigger", "description", trigger.Description())

			for i := 0; i < count; i++ {
				next, err := trigger.Next(from)
				if errors.Is(err, daterule.ErrTriggerExhausted) && i > 0 {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), next.Format(time.RFC3339))
				from = next
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of fire times to print")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <calendar-file>",
		Short: "Import a calendar file into the --database calendar table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Database == "" {
				return errors.New("import requires --database")
			}
			table, err := calendar.LoadFile(args[0])
			if err != nil {
				return err
			}
			store, closeDB, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			if err := store.Upsert(cmd.Context(), table.Entries()); err != nil {
				return err
			}
			a.logger.Info("Imported calendar", "file", args[0], "days", table.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d days\n", table.Len())
			return nil
		},
	}
}
