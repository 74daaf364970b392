// hrmsctl is a command-line front end for the WorkZen HRMS backend. It
// keeps a durable session on disk, so a login survives across invocations
// and expired access tokens are refreshed silently mid-command.
package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/workzen/hrms-client/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()
	logger := newLogger(cfg.GetLogLevel())

	app := newApp(cfg, logger)
	root := rootCmd(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
