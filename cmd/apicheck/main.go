package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/andyle182810/apicheck/cmd/apicheck/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
