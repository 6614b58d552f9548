package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dreitier/staledirs/cleanup"
	"github.com/dreitier/staledirs/config"
	"github.com/dreitier/staledirs/metrics"
	fs "github.com/dreitier/staledirs/storage/fs"
	"github.com/dreitier/staledirs/storage/provider"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const app = "staledirs"

var gitRepo = "dreitier/staledirs"
var gitCommit = "unknown"
var gitTag = "unknown"

func printVersion() {
	if gitTag == "" {
		gitTag = "err-no-git-tag"
	}

	log.Debugf("%s (dist=%s; version=%s; commit=%s)", app, gitRepo, gitTag, gitCommit)
}

func main() {
	configureLogrus(os.Stderr)

	os.Exit(run(os.Args[1:], os.Stdout, provider.NewLocal(), "."))
}

func configureLogrus(out io.Writer) {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
	log.SetOutput(out)
}

// run executes the command line and returns the process exit code
func run(args []string, stdout io.Writer, filesystem fs.Filesystem, root string) int {
	cmd := newRootCommand(filesystem, root)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cleanup.ErrInvalidDateFormat) {
			log.Debugf("Rejected date: %s", err)
			fmt.Fprintln(stdout, cleanup.InvalidDateFormatMessage)
			return 1
		}

		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	return 0
}

func newRootCommand(filesystem fs.Filesystem, root string) *cobra.Command {
	var (
		dryRun  bool
		debug   bool
		cfgFile string
	)

	cmd := &cobra.Command{
		Use:   app + " <date:YYYY-MM-DD>",
		Short: "Delete directories created before a specific date",
		Long: `staledirs deletes the directories in the current working directory which have been
created before the given date (local midnight). The creation time is taken from the
directory's birth time; if the filesystem does not provide one, the status-change time
(ctime) is used instead.

Use --dry-run to show which directories would be deleted.`,
		Version:       gitTag,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the date is validated before anything on disk is touched, including the configuration file
			cutoff, err := cleanup.ParseCutoff(args[0], time.Local)
			if err != nil {
				return err
			}

			if debug {
				log.SetLevel(log.DebugLevel)
				log.Debug("Debug log level enabled")
			}

			printVersion()

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			if !debug {
				log.SetLevel(cfg.LogLevel())
			}

			if log.IsLevelEnabled(log.DebugLevel) {
				log.Debugf("Effective configuration: %s", spew.Sdump(cfg))
			}

			report, err := cleanup.Execute(filesystem, cutoff, cleanup.Options{
				Root:        root,
				DryRun:      dryRun,
				Order:       cfg.CandidateOrder(),
				MeasureSize: cfg.MeasureSize(),
				Filter:      cfg.Directories(),
				Location:    time.Local,
				Output:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			log.Infof("Run finished: %d candidates, %d deleted, %d failed", len(report.Candidates), report.Deleted(), report.Failed())

			if path := cfg.MetricsTextfile(); path != "" {
				runMetrics := metrics.NewRun()
				runMetrics.Observe(report, time.Now())

				if err := runMetrics.WriteTextfile(path); err != nil {
					log.Warnf("%s", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show which directories would be deleted without actually deleting them")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug log; overwrites any configuration file log_level")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.CfgFileName+", $HOME/.staledirs/"+config.CfgFileName+" or "+config.PathGlobal+"/"+config.CfgFileName+")")

	return cmd
}
