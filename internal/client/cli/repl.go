package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen() Screen

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Back(ctx context.Context) error
	Tab(ctx context.Context, name string) error

	ToggleSideMenu(ctx context.Context) error
	ToggleUserMenu(ctx context.Context) error
	OpenPublications(ctx context.Context) error

	ListPublications(ctx context.Context) error
	LoadMore(ctx context.Context) error
	Refresh(ctx context.Context) error
	ShowFilters(ctx context.Context) error
	HideFilters(ctx context.Context) error
	ToggleCategory(ctx context.Context, id string) error
	ApplyFilters(ctx context.Context) error
	ShowPublication(ctx context.Context, n string) error

	OpenEvidence(ctx context.Context, n string) error

	SetTitle(ctx context.Context) error
	SetContent(ctx context.Context) error
	ToggleChip(ctx context.Context, name string) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
}

var helpText = map[Screen]string{
	ScreenLogin:             "Comandos: login, exit",
	ScreenHome:              "Comandos: menu, user, logout, publicaciones, inicio, crear, ajustes, perfil, back, exit",
	ScreenPublications:      "Comandos: (l)ist, (m)ore, (r)efresh, filtros, toggle <id>, aplicar, cerrar, show <n>, back, exit",
	ScreenPublicationDetail: "Comandos: open <n>, back, exit",
	ScreenCreatePublication: "Comandos: titulo, contenido, chip <nombre>, publicar, cancelar, back, exit",
}

// runREPL starts a read–eval–print loop over the navigation stack.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' according to the current screen. Commands
// that need an argument print their usage when it is missing. The bottom bar
// tabs are accepted on every screen but Login. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cu [%s]> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		switch cmd {
		case "exit", "quit":
			printlnFn("¡Hasta pronto!")
			return
		case "help":
			printlnFn(helpText[a.Screen()])
			continue
		}

		if !dispatch(ctx, a, cmd, arg) {
			printlnFn("Comando desconocido:", cmd)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd, arg string) bool {
	screen := a.Screen()
	if screen == ScreenLogin {
		if cmd == "login" {
			_ = a.Login(ctx)
			return true
		}
		return false
	}

	switch cmd {
	case "inicio", "crear", "ajustes", "perfil":
		_ = a.Tab(ctx, cmd)
		return true
	case "back", "volver":
		_ = a.Back(ctx)
		return true
	}

	switch screen {
	case ScreenHome:
		switch cmd {
		case "menu":
			_ = a.ToggleSideMenu(ctx)
		case "user":
			_ = a.ToggleUserMenu(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "publicaciones":
			_ = a.OpenPublications(ctx)
		default:
			return false
		}

	case ScreenPublications:
		switch cmd {
		case "l", "list":
			_ = a.ListPublications(ctx)
		case "m", "more":
			_ = a.LoadMore(ctx)
		case "r", "refresh":
			_ = a.Refresh(ctx)
		case "filtros":
			_ = a.ShowFilters(ctx)
		case "cerrar":
			_ = a.HideFilters(ctx)
		case "aplicar":
			_ = a.ApplyFilters(ctx)
		case "toggle":
			if !needArg(cmd, arg, "<id>") {
				return true
			}
			_ = a.ToggleCategory(ctx, arg)
		case "show":
			if !needArg(cmd, arg, "<n>") {
				return true
			}
			_ = a.ShowPublication(ctx, arg)
		default:
			return false
		}

	case ScreenPublicationDetail:
		switch cmd {
		case "open":
			if !needArg(cmd, arg, "<n>") {
				return true
			}
			_ = a.OpenEvidence(ctx, arg)
		default:
			return false
		}

	case ScreenCreatePublication:
		switch cmd {
		case "titulo":
			_ = a.SetTitle(ctx)
		case "contenido":
			_ = a.SetContent(ctx)
		case "chip":
			if !needArg(cmd, arg, "<nombre>") {
				return true
			}
			_ = a.ToggleChip(ctx, arg)
		case "publicar":
			_ = a.Submit(ctx)
		case "cancelar":
			_ = a.Cancel(ctx)
		default:
			return false
		}

	default:
		return false
	}
	return true
}

func needArg(cmd, arg, usage string) bool {
	if arg != "" {
		return true
	}
	printlnFn("Uso:", cmd, usage)
	return false
}
