package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/stampname/cmd/stampname"
	"github.com/arthur-debert/stampname/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := stampname.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, config.Options{})
	stop()
	os.Exit(code)
}
