package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if session := a.identity.Current(); session != nil {
		return fmt.Sprintf("(%s)", session.User.Username)
	}
	return ""
}

// Run is the REPL of the app: one command per line until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Datarium (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "datarium %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "portfolio":
			a.showPortfolio()
		case "add":
			a.addAsset(ctx)
		case "remove":
			a.removeAsset(ctx, args)
		case "history":
			a.showHistory()
		case "reset":
			a.resetPortfolio(ctx)
		case "profile":
			a.fillProfile(ctx)
		case "dashboard":
			a.showDashboard(ctx)
		case "learn":
			a.learn(args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: portfolio, add, remove <id>, history, dashboard, profile, learn [topic], reset, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, learn [topic], exit")
	}
}

func (a *App) whoami() {
	session := a.identity.Current()
	if session == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "Signed in as %s (id %s)\n", session.User.Username, session.User.ID)
}
