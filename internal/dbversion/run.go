package dbversion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dbversion/dbversion/internal/dbversion/config"
	"github.com/dbversion/dbversion/internal/dbversion/styled"
	"github.com/dbversion/dbversion/internal/reporter"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ErrUnavailable is returned by Run when the database version could not be
// read.
var ErrUnavailable = errors.New("database unavailable")

// VersionReporter reports the version of a database.
type VersionReporter interface {
	Report(ctx context.Context) reporter.Result
}

// Run runs the dbversion checker once and prints the result to stdout.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.NoColor {
		styled.DisableColors()
	}

	rp := reporter.NewReporter(reporter.Config{
		DatabaseURL: conf.DatabaseURL,
	})
	return check(ctx, os.Stdout, rp, conf.Details)
}

// check reports the version once and writes it to out, either as the
// plain line or as a table when details is set.
func check(ctx context.Context, out io.Writer, rp VersionReporter, details bool) error {
	start := time.Now()
	result := rp.Report(ctx)
	elapsed := time.Since(start)

	if details {
		printDetails(out, result, elapsed)
	} else {
		lineColor := styled.SuccessColor()
		if !result.OK() {
			lineColor = styled.FailureColor()
		}
		if _, err := lineColor.Fprintln(out, result.String()); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if !result.OK() {
		return ErrUnavailable
	}
	return nil
}

func printDetails(out io.Writer, result reporter.Result, elapsed time.Duration) {
	outcome := styled.SuccessColor().Sprint(result.Outcome.Value)
	if !result.OK() {
		outcome = styled.FailureColor().Sprint(result.Outcome.Value)
	}

	tw := styled.NewTableWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Outcome", "Value", "Elapsed"})
	tw.AppendRow(table.Row{
		outcome,
		result.Detail(),
		styled.DimmedColor().Sprint(elapsed.Round(time.Millisecond).String()),
	})
	tw.Render()
}
