package console

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"admin-console/internal/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderAccounts(w io.Writer, title string, page domain.Page[domain.Account]) {
	fmt.Fprintln(w, title)
	tw := newTable(w)
	fmt.Fprintln(tw, "ACCOUNT ID\tNICKNAME")
	for _, a := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\n", a.AccountID, a.Nickname)
	}
	tw.Flush()
	renderPagination(w, page.Pagination)
}

func renderFeedback(w io.Writer, title string, page domain.Page[domain.Feedback]) {
	fmt.Fprintln(w, title)
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tACCOUNT ID\tCREATED\tMESSAGE")
	for _, f := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.AccountID, f.CreatedAt.Local().Format(time.DateTime), f.Message)
	}
	tw.Flush()
	renderPagination(w, page.Pagination)
}

func renderPagination(w io.Writer, p domain.Pagination) {
	fmt.Fprintf(w, "page %d/%d, %d total\n", p.CurrentPage, p.Pages(), p.Total)
}

func renderLogin(w io.Writer, redirect string) {
	fmt.Fprintln(w, "Sign in with 'login <username>'.")
	if redirect != "" {
		fmt.Fprintf(w, "You will be taken back to %s.\n", redirect)
	}
}

func renderHelp(w io.Writer, cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := newTable(w)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", cmds[name].usage, cmds[name].help)
	}
	tw.Flush()
}
