package console

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenList(ctx context.Context, page string) error
	OpenCreate(ctx context.Context, page string) error
	OpenEdit(ctx context.Context, page string, id int64) error
	Delete(ctx context.Context, page string, id int64) error
	Report(ctx context.Context) error
	Export(ctx context.Context, format string) error
}

// runREPL starts the read–eval–print loop of the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Before every prompt the pending notification lines (from flashFn) are
// printed, then the prompt with the current status (from statusFn).
//
// Any errors returned by command handlers are ignored here; handlers raise
// their own notifications. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, flashFn func() []string, scanner *bufio.Scanner) {
	for {
		for _, line := range flashFn() {
			printlnFn(line)
		}
		printlnFn(fmt.Sprintf("af> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Commands: list|add|edit|delete <page>, report, export pdf|excel, logout, exit")
				printlnFn("Pages: " + strings.Join(pageList, ", "))
			} else {
				printlnFn("Commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "list", "l":
			if len(args) != 1 {
				printlnFn("Usage: list <page>")
				continue
			}
			_ = a.OpenList(ctx, args[0])

		case "add":
			if len(args) != 1 {
				printlnFn("Usage: add <page>")
				continue
			}
			_ = a.OpenCreate(ctx, args[0])

		case "edit":
			id, ok := parseIDArgs(args)
			if !ok {
				printlnFn("Usage: edit <page> <id>")
				continue
			}
			_ = a.OpenEdit(ctx, args[0], id)

		case "delete":
			id, ok := parseIDArgs(args)
			if !ok {
				printlnFn("Usage: delete <page> <id>")
				continue
			}
			_ = a.Delete(ctx, args[0], id)

		case "report":
			_ = a.Report(ctx)

		case "export":
			if len(args) != 1 {
				printlnFn("Usage: export pdf|excel")
				continue
			}
			_ = a.Export(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseIDArgs(args []string) (int64, bool) {
	if len(args) != 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
