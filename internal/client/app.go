// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/workers"
)

const plainPrompt = "Enter a command: "

type App struct {
	mode     string
	exec     Executor
	tui      UI
	startup  *workers.Workers
	shutdown *workers.Workers

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(cfg config.ClientUI, exec Executor, tui UI, startup, shutdown *workers.Workers, logger *logger.Logger) *App {
	return &App{
		mode:     cfg.Mode,
		exec:     exec,
		tui:      tui,
		startup:  startup,
		shutdown: shutdown,
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logger,
	}
}

// Run loads the book, hands the terminal to the front end and saves the
// book once the user quits. A failed startup worker is reported and the
// session continues with whatever the service holds.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.startup.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("startup workers failed")
		fmt.Fprintf(a.out, "warning: %v\n", err)
	}

	var err error
	if a.useTUI() {
		a.logger.Info().Str("func", "App.Run").Msg("starting tui")
		err = a.tui.Run(ctx)
	} else {
		a.logger.Info().Str("func", "App.Run").Msg("starting plain mode")
		err = a.runPlain(ctx)
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if err = a.shutdown.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("shutdown workers failed")
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *App) useTUI() bool {
	switch a.mode {
	case config.UIModeTUI:
		return true
	case config.UIModePlain:
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runPlain reads command lines until a quit command or end of input.
func (a *App) runPlain(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, plainPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			break
		}

		res := a.exec.Execute(ctx, scanner.Text())
		if res.Output != "" {
			fmt.Fprintln(a.out, res.Output)
		}
		if res.Quit {
			return nil
		}

		if err := ctx.Err(); err != nil {
			fmt.Fprintln(a.out, app.MsgGoodBye)
			return nil
		}
	}

	return scanner.Err()
}
