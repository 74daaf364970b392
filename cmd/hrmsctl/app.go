package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/workzen/hrms-client/gateway"
	"github.com/workzen/hrms-client/hrms"
	"github.com/workzen/hrms-client/internal/config"
	hrmserrors "github.com/workzen/hrms-client/internal/errors"
	"github.com/workzen/hrms-client/navigation"
	"github.com/workzen/hrms-client/session"
	"github.com/workzen/hrms-client/session/storage"
)

// app wires the session store, gateway, and typed API clients together for
// the command handlers.
type app struct {
	cfg    config.Config
	store  *session.Store
	client *hrms.Client
	nav    *navigation.Resolver
	log    zerolog.Logger
}

func newApp(cfg config.Config, logger zerolog.Logger) *app {
	repo := storage.NewFileRepo(cfg.GetDataFolder())
	store := session.NewStore(repo,
		session.WithLogger(logger),
		session.WithLoginRedirect(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'hrmsctl login' to sign in again.")
		}),
	)
	store.Initialize()

	gw := gateway.New(cfg, store, gateway.WithGatewayLogger(logger))
	return &app{
		cfg:    cfg,
		store:  store,
		client: hrms.New(gw, store),
		nav:    navigation.NewResolver(store, navigation.DefaultRoutes()),
		log:    logger,
	}
}

// requireSession rejects resource commands early when no session is stored,
// instead of letting them fail with a backend 401 round trip.
func requireSession(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !a.store.IsAuthenticated() {
			return hrmserrors.Wrapf(hrmserrors.ErrNotAuthenticated, "run 'hrmsctl login' first")
		}
		return nil
	}
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrmsctl",
		Short:         "WorkZen HRMS command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		menuCmd(a),
		openCmd(a),
		employeeCmd(a),
		attendanceCmd(a),
		leaveCmd(a),
		payrollCmd(a),
		performanceCmd(a),
		departmentCmd(a),
		designationCmd(a),
	)
	return cmd
}
