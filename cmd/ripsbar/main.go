// Command ripsbar computes Vietoris-Rips persistence barcodes of a point
// cloud and optionally records the runs in SQLite.
//
//	ripsbar [scan] -input cloud.csv -step 0.25 -end 2 -ring Z
//	ripsbar scan -sample circle -sample-points 12 -format json -db runs.db
//	ripsbar runs -db runs.db
//	ripsbar show -db runs.db <run-id>
//
// Every flag can also be set as RIPSBAR_<NAME> in the environment or in a
// .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlath-persistence/logging"
)

// ErrUnknownCommand indicates an unrecognized subcommand.
var ErrUnknownCommand = errors.New("ripsbar: unknown command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := "scan"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	cfg, rest, err := LoadConfig(".env", args, stderr)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	switch cmd {
	case "scan":
		if err = ValidateConfig(&cfg); err != nil {
			return err
		}
		return withMetrics(ctx, cfg.MetricsAddr, log, func(ctx context.Context) error {
			return scan(ctx, cfg, log, stdout)
		})
	case "runs":
		return listRuns(ctx, cfg, stdout)
	case "show":
		if len(rest) != 1 {
			return errors.New("ripsbar: show takes exactly one run id")
		}
		return showRun(ctx, cfg, rest[0], stdout)
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd)
	}
}
