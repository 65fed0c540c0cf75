package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/imob/internal/logging"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Mine(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Describe(ctx context.Context, args []string) error
}

const (
	helpGuest  = "Available commands: login, list [q= type= city= max=], show <id>, describe, help, exit"
	helpMember = "Available commands: list [q= type= city= max=], show <id>, mine, add, edit <id>, import <file> [id], delete <id>, describe [id], whoami, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the imob CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches the remaining tokens to methods on 'a'. Unknown commands and
// handler errors are reported to w and logged; neither ends the loop. The loop exits on
// EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer, prompt bool, log logging.Logger) {
	for {
		if prompt {
			fmt.Fprintf(w, "imob %s> ", statusFn())
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpMember)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "login":
			cmdErr = a.Login(ctx, args)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "mine":
			cmdErr = a.Mine(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit":
			cmdErr = a.Edit(ctx, args)

		case "import":
			cmdErr = a.Import(ctx, args)

		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)

		case "describe":
			cmdErr = a.Describe(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			log.Error(ctx, "command failed", "command", cmd, "error", cmdErr)
			fmt.Fprintf(w, "Error: %v\n", cmdErr)
		}
	}
}
