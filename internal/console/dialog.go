package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"admin-console/internal/navigation"
)

// Dialog implementa apiclient.Dialog en la terminal: muestra el aviso y
// bloquea hasta que el operador pulsa Enter.
type Dialog struct {
	rl     LineReader
	out    io.Writer
	router *navigation.Router
}

func NewDialog(rl LineReader, out io.Writer, router *navigation.Router) *Dialog {
	return &Dialog{rl: rl, out: out, router: router}
}

func (d *Dialog) Alert(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "\n[%s] %s\n", title, message)
	d.rl.SetPrompt("[确定] ")
	defer func() {
		if d.router != nil {
			d.rl.SetPrompt(promptFor(d.router.Current()))
		}
	}()

	// EOF cuenta como confirmacion: no queda nadie para cancelar.
	if _, err := d.rl.Readline(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("dialog dismissed without confirmation: %w", err)
	}
	return ctx.Err()
}
