package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. *App satisfies
// it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Motos(ctx context.Context) error
	Resumo(ctx context.Context) error
	SignOut(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them. Handler errors
// are not propagated — each handler reports to the user itself — so one
// bad command never ends the loop. The loop exits on EOF, "sair" or "exit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("motopatio — digite 'help' para ver os comandos")

	for {
		fmt.Printf("patio %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: whoami, motos, resumo, logout, reset, sair")
			} else {
				printlnFn("Comandos: login, register, reset, sair")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "motos":
			_ = a.Motos(ctx)

		case "resumo":
			_ = a.Resumo(ctx)

		case "logout":
			_ = a.SignOut(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "sair", "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", parts[0])
		}
	}
}
