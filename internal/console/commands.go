package console

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"admin-console/internal/domain"
	"admin-console/internal/navigation"
)

// landingPath es el destino tras login cuando no hay redirect pendiente.
const landingPath = "/user"

type command struct {
	usage string
	help  string
	run   func(c *Console, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"go":       {"go <path>", "navigate to a route, e.g. go /feedback", (*Console).cmdGo},
		"back":     {"back", "return to the previous location", (*Console).cmdBack},
		"login":    {"login <username>", "sign in; the password is read without echo", (*Console).cmdLogin},
		"logout":   {"logout", "sign out and clear the stored session", (*Console).cmdLogout},
		"users":    {"users [page] [size]", "list accounts (用户管理)", (*Console).cmdUsers},
		"feedback": {"feedback [page] [size]", "list feedback (用户反馈)", (*Console).cmdFeedback},
		"whoami":   {"whoami", "show the signed-in operator", (*Console).cmdWhoami},
		"where":    {"where", "show the current location", (*Console).cmdWhere},
		"help":     {"help", "show this help", (*Console).cmdHelp},
		"exit":     {"exit", "quit the console", (*Console).cmdExit},
	}
}

func (c *Console) cmdGo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: go <path>")
	}
	if _, err := c.router.Push(ctx, args[0]); err != nil {
		return err
	}
	return c.render(ctx)
}

func (c *Console) cmdBack(ctx context.Context, _ []string) error {
	if _, err := c.router.Back(ctx); err != nil {
		return err
	}
	return c.render(ctx)
}

func (c *Console) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <username>")
	}
	password, err := c.rl.ReadPassword("password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if _, err := c.client.Login(ctx, domain.Credentials{Username: args[0], Password: string(password)}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Signed in as %s.\n", args[0])

	target := landingPath
	if current := c.router.Current(); current.Path == navigation.LoginPath {
		if redirect := current.Query.Get(navigation.RedirectParam); redirect != "" {
			target = redirect
		}
	}
	if _, err := c.router.Push(ctx, target); err != nil {
		return err
	}
	return c.render(ctx)
}

func (c *Console) cmdLogout(ctx context.Context, _ []string) error {
	if err := c.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out.")
	if _, err := c.router.Push(ctx, navigation.LoginPath); err != nil {
		return err
	}
	return c.render(ctx)
}

func (c *Console) cmdUsers(ctx context.Context, args []string) error {
	return c.openList(ctx, "/user", "users [page] [size]", args)
}

func (c *Console) cmdFeedback(ctx context.Context, args []string) error {
	return c.openList(ctx, "/feedback", "feedback [page] [size]", args)
}

// openList navega a la vista con page/size en la query; el guard decide el acceso.
func (c *Console) openList(ctx context.Context, path, usage string, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("usage: %s", usage)
	}
	query := url.Values{}
	for i, name := range []string{"page", "size"} {
		if i >= len(args) {
			break
		}
		n, err := strconv.Atoi(args[i])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid %s %q", name, args[i])
		}
		query.Set(name, strconv.Itoa(n))
	}
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	if _, err := c.router.Push(ctx, target); err != nil {
		return err
	}
	return c.render(ctx)
}

func (c *Console) cmdWhoami(ctx context.Context, _ []string) error {
	me, err := c.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s (%s)\n", me.Nickname, me.AccountID)
	return nil
}

func (c *Console) cmdWhere(_ context.Context, _ []string) error {
	current := c.router.Current()
	if current.Title != "" {
		fmt.Fprintf(c.out, "%s  %s\n", current.FullPath, current.Title)
		return nil
	}
	fmt.Fprintln(c.out, current.FullPath)
	return nil
}

func (c *Console) cmdHelp(_ context.Context, _ []string) error {
	renderHelp(c.out, commands)
	return nil
}

func (c *Console) cmdExit(_ context.Context, _ []string) error {
	return ErrExit
}

// render pinta la vista de la ubicacion actual.
func (c *Console) render(ctx context.Context) error {
	current := c.router.Current()
	switch current.Name {
	case "user":
		page, err := c.client.ListAccounts(ctx, paginationFrom(current.Query))
		if err != nil {
			return err
		}
		renderAccounts(c.out, current.Title, page)
	case "feedback":
		page, err := c.client.ListFeedback(ctx, paginationFrom(current.Query))
		if err != nil {
			return err
		}
		renderFeedback(c.out, current.Title, page)
	case "login":
		renderLogin(c.out, current.Query.Get(navigation.RedirectParam))
	case "not-found":
		fmt.Fprintln(c.out, "404: page not found. Try 'go /user' or 'help'.")
	default:
		fmt.Fprintln(c.out, "Views: /user (用户管理), /feedback (用户反馈).")
	}
	return nil
}

func paginationFrom(q url.Values) domain.Pagination {
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))
	return domain.Pagination{CurrentPage: page, PageSize: size}.Normalize()
}
