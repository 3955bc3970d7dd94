// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
)

// Result is the outcome of one command line.
type Result struct {
	// Output is the message to show the user. It may span several lines.
	Output string

	// Quit is set when the user asked to end the session.
	Quit bool
}

type handlerFunc func(ctx context.Context, args []string) (string, error)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     handlerFunc
}

// Dispatcher executes command lines against the contact service.
type Dispatcher struct {
	contacts  service.ContactService
	appInfo   service.AppInfoService
	clipboard Clipboard
	pageSize  int

	commands map[string]command
	order    []string

	logger *logger.Logger
}

func NewDispatcher(services *service.Services, clip Clipboard, cfg config.ClientApp, logger *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		contacts:  services.ContactService,
		appInfo:   services.AppInfoService,
		clipboard: clip,
		pageSize:  cfg.PageSize,
		logger:    logger,
	}
	d.register()
	return d
}

func (d *Dispatcher) register() {
	d.commands = make(map[string]command)
	add := func(word string, c command) {
		d.commands[word] = c
		d.order = append(d.order, word)
	}

	add("hello", command{usage: "hello", run: d.hello})
	add("add", command{usage: "add <name> <phone> [YYYY-MM-DD]", minArgs: 2, maxArgs: 3, run: d.add})
	add("add-phone", command{usage: "add-phone <name> <phone>", minArgs: 2, maxArgs: 2, run: d.addPhone})
	add("change", command{usage: "change <name> <phone>", minArgs: 2, maxArgs: 2, run: d.change})
	add("edit", command{usage: "edit <name> <old phone> <new phone>", minArgs: 3, maxArgs: 3, run: d.edit})
	add("remove-phone", command{usage: "remove-phone <name> <phone>", minArgs: 2, maxArgs: 2, run: d.removePhone})
	add("phone", command{usage: "phone <name>", minArgs: 1, maxArgs: 1, run: d.phone})
	add("copy", command{usage: "copy <name>", minArgs: 1, maxArgs: 1, run: d.copy})
	add("delete", command{usage: "delete <name>", minArgs: 1, maxArgs: 1, run: d.delete})
	add("birthday", command{usage: "birthday <name> <YYYY-MM-DD>", minArgs: 2, maxArgs: 2, run: d.birthday})
	add("days", command{usage: "days <name>", minArgs: 1, maxArgs: 1, run: d.days})
	add("show all", command{usage: "show all", run: d.showAll})
	add("page", command{usage: "page <n>", minArgs: 1, maxArgs: 1, run: d.page})
	add("find", command{usage: "find <query>", minArgs: 1, maxArgs: -1, run: d.find})
	add("save", command{usage: "save [path]", maxArgs: 1, run: d.save})
	add("load", command{usage: "load [path]", maxArgs: 1, run: d.load})
	add("version", command{usage: "version", run: d.version})
	add("help", command{usage: "help", run: d.help})
	add("exit", command{usage: "good bye | close | exit"})
}

// Execute runs one command line. An empty line produces an empty Result.
func (d *Dispatcher) Execute(ctx context.Context, line string) Result {
	word, args := split(line)
	if word == "" {
		return Result{}
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("func", "Dispatcher.Execute").Str("command", word).Int("args", len(args)).Msg("executing command")

	switch word {
	case "good bye", "close", "exit":
		return Result{Output: app.MsgGoodBye, Quit: true}
	}

	cmd, ok := d.commands[word]
	if !ok {
		return Result{Output: app.MsgInvalidCommand}
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return Result{Output: fmt.Sprintf(app.MsgUsage, cmd.usage)}
	}

	out, err := cmd.run(ctx, args)
	if err != nil {
		log.Err(err).Str("func", "Dispatcher.Execute").Str("command", word).Msg("command failed")
		return Result{Output: errorMessage(err, args)}
	}
	return Result{Output: out}
}

// split returns the lowercased command word and the remaining arguments.
// The two-word commands "show all" and "good bye" are joined into one word.
func split(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	word := strings.ToLower(fields[0])
	if len(fields) > 1 {
		pair := word + " " + strings.ToLower(fields[1])
		if pair == "show all" || pair == "good bye" {
			return pair, fields[2:]
		}
	}
	return word, fields[1:]
}
