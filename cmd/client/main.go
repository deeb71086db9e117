package main

import (
	"QRKeeper/internal/cli/commands"
	"QRKeeper/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

// run возвращает код выхода: 0 ok, 1 ошибка команды, 2 неверное использование.
func run() int {
	// env + .env + флаги; --base-url и --token-file общие для всех команд
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Fprintf(commands.Out, "QRKeeper CLI\nVersion: %s\nBuild date: %s\nServer: %s\n", version, buildDate, cfg.ServerURL)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
