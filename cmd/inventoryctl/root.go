package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/pkg/config"
	"github.com/jhoicas/medstock/pkg/inventoryclient"
	"github.com/jhoicas/medstock/pkg/logger"
)

var (
	flagServer      string
	flagSessionFile string
	flagVerbose     bool
)

// rootCmd comando raíz; los subcomandos comparten configuración y sesión.
var rootCmd = &cobra.Command{
	Use:   "inventoryctl",
	Short: "Terminal client for the MedStock inventory",
	Long: `inventoryctl talks to the MedStock API.

Sign in once with 'inventoryctl signin'; the session is kept in a local file
until 'inventoryctl logout'. Viewers can list and search; administrators can
also add and delete items.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "API base URL (default CLIENT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagSessionFile, "session-file", "", "session file (default ~/.medstock/session.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log retries and failures")

	rootCmd.AddCommand(signinCmd, logoutCmd, listCmd, summaryCmd, addCmd, deleteCmd)
}

// env dependencias resueltas para un comando.
type env struct {
	cfg      *config.Config
	sessions FileSessionStore
	log      *logger.Logger
	out      io.Writer
	in       *bufio.Reader
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := "warn"
	if flagVerbose {
		level = "debug"
	}
	path := flagSessionFile
	if path == "" {
		path = cfg.Client.SessionFile
	}
	if path == "" {
		path = DefaultSessionPath()
	}
	if flagServer != "" {
		cfg.Client.BaseURL = flagServer
	}
	return &env{
		cfg:      cfg,
		sessions: FileSessionStore{Path: path},
		log:      logger.New(logger.Config{Env: "development", Level: level, Out: os.Stderr}).Component("inventoryctl"),
		out:      cmd.OutOrStdout(),
		in:       bufio.NewReader(cmd.InOrStdin()),
	}, nil
}

func (e *env) client(token string) *inventoryclient.Client {
	return inventoryclient.New(e.cfg.Client.BaseURL,
		inventoryclient.WithToken(token),
		inventoryclient.WithTimeout(e.cfg.Client.Timeout),
		inventoryclient.WithRetries(e.cfg.Client.MaxRetries, inventoryclient.DefaultBackoff),
		inventoryclient.WithLogger(e.log),
	)
}

// requireSession es el guardián de sesión del CLI: sin sesión no hay comando protegido.
func (e *env) requireSession() (*entity.Session, *inventoryclient.Client, error) {
	sess, err := e.sessions.Load()
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, inventoryclient.ErrNoSession
	}
	return sess, e.client(sess.Token), nil
}

func (e *env) prompt(label string) (string, error) {
	fmt.Fprint(e.out, label)
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
