// Command portal is a terminal front-end for the reporting API. It logs in
// (or reuses a stored session), builds the dashboard for the account's role,
// loads it and prints the summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/client/store"
	"github.com/tumelo/reportal/internal/dashboard"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

func main() {
	var (
		baseURL  = flag.String("base-url", envOr("REPORTAL_BASE_URL", "http://localhost:5000"), "API base URL")
		stateDir = flag.String("state-dir", os.Getenv("REPORTAL_STATE_DIR"), "local state directory (default: user config dir)")
		email    = flag.String("email", "", "login email (omit to reuse the stored session)")
		password = flag.String("password", "", "login password")
		logout   = flag.Bool("logout", false, "clear the stored session and exit")
	)
	flag.Parse()

	if err := run(*baseURL, *stateDir, *email, *password, *logout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(baseURL, stateDir, email, password string, logout bool) error {
	local, err := store.New(stateDir)
	if err != nil {
		return err
	}

	if logout {
		if err := local.ClearSession(); err != nil {
			return err
		}
		fmt.Println("Session cleared.")
		return nil
	}

	api := client.New(baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sess, err := establishSession(ctx, api, local, email, password)
	if err != nil {
		return err
	}
	api.SetToken(sess.Token)

	view, err := dashboard.ForUser(sess.User, api, local)
	if err != nil {
		return err
	}
	if err := view.Load(ctx); err != nil {
		return err
	}

	fmt.Print(view.Summary())
	return nil
}

func establishSession(ctx context.Context, api *client.Client, local *store.Store, email, password string) (store.Session, error) {
	if email == "" {
		sess, ok, err := local.LoadSession()
		if err != nil {
			return store.Session{}, err
		}
		if !ok {
			return store.Session{}, fmt.Errorf("no stored session; log in with -email and -password")
		}
		return sess, nil
	}

	resp, err := api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return store.Session{}, err
	}

	sess := store.Session{User: *resp.User, Token: resp.Token}
	if err := local.SaveSession(sess); err != nil {
		logger.Warn().Err(err).Msg("Failed to store session")
	}
	return sess, nil
}
