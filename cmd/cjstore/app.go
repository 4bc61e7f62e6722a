package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/cjstore-api/internal/client"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/kv"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/remote"
)

const defaultAPIURL = "http://localhost:8080"

// cliApp estado compartido por los subcomandos; se arma en PersistentPreRunE.
type cliApp struct {
	api       *remote.Client
	session   *client.SessionStore
	catalog   *client.CatalogStore
	directory *client.StoreDirectory
	kv        kv.Store
}

func (a *cliApp) open(ctx context.Context) error {
	_ = godotenv.Load()

	apiURL := envOr("CJSTORE_API_URL", defaultAPIURL)
	sessionPath := os.Getenv("CJSTORE_SESSION_PATH")
	if sessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("directorio home: %w", err)
		}
		sessionPath = filepath.Join(home, ".cjstore", "session.db")
	}

	store, err := kv.OpenBolt(sessionPath)
	if err != nil {
		return err
	}
	a.kv = store
	a.session = client.NewSessionStore(ctx, store, nil)
	a.api = remote.NewClient(apiURL, a.session.Token)
	a.session.SetGateway(a.api)
	a.catalog = client.NewCatalogStore(a.api)
	a.directory = client.NewStoreDirectory(a.api)
	return nil
}

func (a *cliApp) close() {
	if a.kv != nil {
		_ = a.kv.Close()
		a.kv = nil
	}
}

// requireSession devuelve la sesión o un error legible.
func (a *cliApp) requireSession() (*client.Session, error) {
	sess := a.session.Current()
	if sess == nil {
		return nil, errors.New("no hay sesión: ejecuta 'cjstore login'")
	}
	return sess, nil
}

// ownStoreID tienda de la sesión, o error si el usuario aún no tiene.
func (a *cliApp) ownStoreID() (string, error) {
	sess, err := a.requireSession()
	if err != nil {
		return "", err
	}
	if sess.User.StoreID == "" {
		return "", errors.New("la cuenta no tiene tienda: ejecuta 'cjstore store create'")
	}
	return sess.User.StoreID, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newRootCmd arma el árbol de comandos. cleanup cierra la sesión abierta y debe
// llamarse tras Execute aunque el comando falle (PersistentPostRun no corre en error).
func newRootCmd() (root *cobra.Command, cleanup func()) {
	app := &cliApp{}
	root = &cobra.Command{
		Use:           "cjstore",
		Short:         "CJStore: cliente del comerciante",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.open(cmd.Context())
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStoreCmd(app),
		newProductsCmd(app),
		newStorefrontCmd(app),
		newOrderLinkCmd(app),
		newDashboardCmd(app),
	)
	return root, app.close
}

// apiMessage mensaje legible para errores de la API.
func apiMessage(err error) error {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}
