package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// promptOut receives interactive prompts.
var promptOut io.Writer = os.Stdout

// Messages printed by the REPL itself.
const (
	MsgLoginRequired = "Please log in first."
	MsgSessionEnded  = "Your session has ended. Please log in again."
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	History(ctx context.Context) error
	Cards(ctx context.Context) error
	Transfer(ctx context.Context) error
	Statement(ctx context.Context) error
}

// protected lists commands that need an authenticated session.
var protected = map[string]bool{
	"dashboard": true, "d": true,
	"history": true, "h": true,
	"cards":     true,
	"transfer":  true,
	"statement": true,
}

// runREPL starts a simple read–eval–print loop for the bank CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	Always available:
//	  - help              show available commands
//	  - register          create an account
//	  - login             authenticate
//	  - whoami            show the signed-in identity
//	  - logout            end the session
//	  - exit | quit       leave the program
//
//	Need a session (otherwise "Please log in first."):
//	  - (d)ashboard       accounts, primary card and recent activity
//	  - (h)istory         primary account transactions
//	  - cards             all cards
//	  - transfer          send money from the primary account
//	  - statement         primary account statement
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		if protected[cmd] && !a.isLoggedIn() {
			printlnFn(MsgLoginRequired)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (d)ashboard, (h)istory, cards, transfer, statement, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, whoami, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "cards":
			_ = a.Cards(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "statement":
			_ = a.Statement(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
