// Package console es la shell interactiva de administracion: cada comando es
// una transicion de ruta y las vistas llaman a la API a traves de apiclient.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"admin-console/internal/apiclient"
	"admin-console/internal/navigation"
	"admin-console/internal/session"
)

var ErrExit = errors.New("exit requested")

// LineReader es el subconjunto de *readline.Instance que usa la consola.
type LineReader interface {
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
	SetPrompt(prompt string)
}

type Console struct {
	rl     LineReader
	out    io.Writer
	client *apiclient.Client
	router *navigation.Router
	store  session.Store
	logger *zap.Logger
}

func New(rl LineReader, out io.Writer, client *apiclient.Client, router *navigation.Router, store session.Store, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		rl:     rl,
		out:    out,
		client: client,
		router: router,
		store:  store,
		logger: logger,
	}
	router.OnChange(func(_, to navigation.Match) {
		c.rl.SetPrompt(promptFor(to))
	})
	c.rl.SetPrompt(promptFor(router.Current()))
	return c
}

func promptFor(m navigation.Match) string {
	if m.FullPath == "" {
		return "admin-console> "
	}
	return fmt.Sprintf("admin-console:%s> ", m.FullPath)
}

// Start hace la primera navegacion y pinta la vista resultante.
func (c *Console) Start(ctx context.Context, path string) error {
	if _, err := c.router.Push(ctx, path); err != nil {
		return fmt.Errorf("start at %s: %w", path, err)
	}
	return c.render(ctx)
}

// Run lee comandos hasta exit o EOF.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(c.out, "Use 'exit' to quit.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := c.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			c.printError(ctx, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Execute ejecuta una linea de comando.
func (c *Console) Execute(ctx context.Context, line string) error {
	args := ParseArgs(strings.TrimSpace(line))
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
	return cmd.run(c, ctx, args[1:])
}

// ParseArgs separa por espacios respetando comillas dobles.
func ParseArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case (r == ' ' || r == '\t') && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

func (c *Console) printError(ctx context.Context, err error) {
	var statusErr *apiclient.StatusError
	switch {
	case apiclient.IsUnauthorized(err) && c.sessionKept(ctx):
		fmt.Fprintln(c.out, "error: unauthorized (401). The session was kept because the prompt was not confirmed.")
	case apiclient.IsUnauthorized(err):
		fmt.Fprintln(c.out, "Session ended. Use 'login <username>' to sign in again.")
	case errors.As(err, &statusErr):
		fmt.Fprintf(c.out, "error: %s (%d)\n", statusErr.Message, statusErr.StatusCode)
	default:
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	c.logger.Debug("command failed", zap.Error(err))
}

// sessionKept informa si el token sigue guardado tras un 401, es decir si la
// recuperacion no llego a borrarlo.
func (c *Console) sessionKept(ctx context.Context) bool {
	ok, err := session.HasToken(ctx, c.store)
	return err == nil && ok
}
