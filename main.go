package main

import (
	"context"
	"os"
	"os/signal"

	"fjacquet/camt-report/cmd/batch"
	"fjacquet/camt-report/cmd/convert"
	"fjacquet/camt-report/cmd/report"
	"fjacquet/camt-report/cmd/root"
	"fjacquet/camt-report/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// cobra prints the error on stderr
	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
