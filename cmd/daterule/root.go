package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/reugn/go-daterule/calendar"
	"github.com/reugn/go-daterule/daterule"
	"github.com/reugn/go-daterule/logger"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

// app carries the resolved configuration of a command invocation.
type app struct {
	cfgFile string
	cfg     config
	flags   config

	logger   *logger.ZapLogger
	calendar calendar.Calendar
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "daterule",
		Short: "Evaluate calendar date rules",
		Long: `daterule evaluates "<year>/<month>/<day>" date rules.

Each segment is a comma-separated list of tokens:
  year   y | 2021
  month  m | 2 | feb
  day    d | 15 | mon..sun | t<N> (Nth business day of the month)

Business days come from --calendar (csv, json, yaml or toml file),
--database (SQLite), --holidays us, or default to Monday through Friday.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml or toml)")
	flags.StringVar(&a.flags.Calendar, "calendar", "", "business day calendar file")
	flags.StringVar(&a.flags.Database, "database", "", "SQLite database holding the calendar")
	flags.StringVar(&a.flags.Table, "table", "", "calendar table name")
	flags.StringVar(&a.flags.Holidays, "holidays", "", "holiday calendar preset (us)")
	flags.BoolVar(&a.flags.Lenient, "lenient", false, "treat invalid tokens as non-matching")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	rootCmd.AddCommand(
		newMatchCmd(a),
		newDatesCmd(a),
		newNthCmd(a),
		newTimeCmd(a),
		newNextCmd(a),
		newImportCmd(a),
	)
	return rootCmd
}

// setup merges the config file with the command line flags and builds the
// logger and the business day calendar.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		if err := loadConfig(a.cfgFile, &a.cfg); err != nil {
			return err
		}
	}
	a.mergeFlags(cmd)

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.logger, err = logger.NewZapDevelopment(level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// import writes the database itself
	if cmd.Name() == "import" {
		return nil
	}
	a.calendar, err = a.openCalendar(cmd.Context())
	return err
}

func (a *app) mergeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("calendar") {
		a.cfg.Calendar = a.flags.Calendar
	}
	if flags.Changed("database") {
		a.cfg.Database = a.flags.Database
	}
	if flags.Changed("table") {
		a.cfg.Table = a.flags.Table
	}
	if flags.Changed("holidays") {
		a.cfg.Holidays = a.flags.Holidays
	}
	if flags.Changed("lenient") {
		a.cfg.Lenient = a.flags.Lenient
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.flags.LogLevel
	}
}

func (a *app) openCalendar(ctx context.Context) (calendar.Calendar, error) {
	switch {
	case a.cfg.Calendar != "":
		a.logger.Debug("Loading calendar file", "path", a.cfg.Calendar)
		table, err := calendar.LoadFile(a.cfg.Calendar)
		if err != nil {
			return nil, err
		}
		return table, nil
	case a.cfg.Database != "":
		store, closeDB, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		a.logger.Debug("Loading calendar table", "database", a.cfg.Database)
		table, err := store.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		return table, nil
	case a.cfg.Holidays != "":
		switch strings.ToLower(a.cfg.Holidays) {
		case "us":
			return calendar.NewUSFederal(), nil
		default:
			return nil, fmt.Errorf("unknown holiday preset %q", a.cfg.Holidays)
		}
	}
	// weekday fallback
	return nil, nil
}

func (a *app) openStore(ctx context.Context) (*calendar.SQLStore, func(), error) {
	db, err := sql.Open("sqlite", a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = db.Close() }
	store, err := calendar.NewSQLStore(db, a.cfg.Table)
	if err == nil {
		err = store.Init(ctx)
	}
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}

func (a *app) matcher() *daterule.Matcher {
	return daterule.NewMatcher(
		daterule.WithCalendar(a.calendar),
		daterule.WithLenient(a.cfg.Lenient),
		daterule.WithLogger(a.logger),
	)
}
