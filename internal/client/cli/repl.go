package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/expensetracker/internal/client/pages"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentRoute() pages.Route
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Targets(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the expense tracker CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// # Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out (login or register page):
//	  - help           - show available commands
//	  - login          - sign in
//	  - register       - create an account
//	  - exit | quit    - leave the program
//
//	Dashboard:
//	  - help           - show available commands
//	  - dashboard      - reload the profile and show it again
//	  - targets        - change the monthly targets
//	  - logout         - sign out
//	  - exit | quit    - leave the program
//
// Errors returned by command handlers are ignored here; the pages have
// already told the user what went wrong.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("et %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.currentRoute() == pages.RouteDashboard {
				printlnFn("Available commands: dashboard, targets, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "dashboard", "d":
			_ = a.Dashboard(ctx)

		case "targets":
			_ = a.Targets(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
