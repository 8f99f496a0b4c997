package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	user   string
}

func NewApp(c *config.Config) (*App, error) {
	store, err := client.NewFileSessionStore(c.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, store)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

// Run greets a restored session, if any, and blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Welcome to accountkeeper CLI (type 'help' for commands)")

	if a.client.LoggedIn() {
		if err := a.WhoAmI(ctx); err != nil {
			fmt.Fprintln(a.out, "Saved session is no longer valid, please log in again.")
		}
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) status() string {
	if a.user != "" && a.isLoggedIn() {
		return "(" + a.user + ")"
	}
	return ""
}

// withTimeout bounds one server call by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) printUser(u *pb.User) {
	if u == nil {
		return
	}
	a.user = u.Username
	fmt.Fprintf(a.out, "ID:        %s\n", u.GetId())
	fmt.Fprintf(a.out, "Username:  %s\n", u.Username)
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "Full name: %s\n", u.FullName)
	fmt.Fprintf(a.out, "Avatar:    %s\n", u.Avatar)
	if u.CoverImage != "" {
		fmt.Fprintf(a.out, "Cover:     %s\n", u.CoverImage)
	}
}
