package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/inventory"
	"github.com/jhoicas/medstock/internal/interfaces/view"
	"github.com/jhoicas/medstock/pkg/inventoryclient"
)

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in and store the session locally",
	RunE:  runSignin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the summary and the inventory table",
	Long: `Fetch the full inventory, show the summary cards (always over the whole
inventory) and the table filtered by --search (name, category or location).`,
	RunE: runList,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the summary computed by the server",
	RunE:  runSummary,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item (admin)",
	RunE:  runAdd,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item after confirmation (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	flagUsername string
	flagPassword string
	flagSearch   string
	flagYes      bool
	addInput     inventoryclient.CreateItemInput
)

func init() {
	signinCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "username (prompted if empty)")
	signinCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "password (prompted if empty)")

	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "filter by name, category or location")

	addCmd.Flags().StringVar(&addInput.Name, "name", "", "item name (required)")
	addCmd.Flags().StringVar(&addInput.Category, "category", "", "category")
	addCmd.Flags().StringVar(&addInput.Location, "location", "", "storage location")
	addCmd.Flags().StringVar(&addInput.Qty, "qty", "", "quantity (required)")
	addCmd.Flags().StringVar(&addInput.Reorder, "reorder", "", "reorder minimum")
	addCmd.Flags().StringVar(&addInput.Expiry, "expiry", "", "expiry date YYYY-MM-DD")

	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
}

func runSignin(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	username, password := flagUsername, flagPassword
	if username == "" {
		if username, err = e.prompt("Username: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = e.prompt("Password: "); err != nil {
			return err
		}
	}
	sess, err := e.client("").SignIn(cmd.Context(), username, password)
	if err != nil {
		return err
	}
	if err := e.sessions.Save(sess); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	fmt.Fprintf(e.out, "Signed in as %s (%s)\n", sess.Username, entity.AccessFor(sess))
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	if err := e.sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Signed out")
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	sess, client, err := e.requireSession()
	if err != nil {
		return err
	}
	if err := client.Reload(cmd.Context()); err != nil {
		renderError(e.out, "Could not load inventory.")
		return err
	}
	printScreen(e, sess, client.Store().Current(), flagSearch, serverToday(cmd.Context(), e, client))
	return nil
}

// serverToday "hoy" según el servidor (fecha de /api/inventory/summary), para que las pastillas
// coincidan con la pantalla web. Si el resumen no responde se usa el reloj local.
func serverToday(ctx context.Context, e *env, client *inventoryclient.Client) time.Time {
	s, err := client.Summary(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("fecha del servidor no disponible, se usa el reloj local")
		return time.Now()
	}
	return todayFrom(s.Date, time.Now())
}

func todayFrom(date string, fallback time.Time) time.Time {
	d, err := entity.ParseDate(date)
	if err != nil || d.IsZero() {
		return fallback
	}
	return d.Midnight()
}

// printScreen mismo armado que la pantalla web: resumen sobre todo, tabla sobre lo filtrado.
func printScreen(e *env, sess *entity.Session, items []entity.InventoryItem, query string, today time.Time) {
	renderSummary(e.out, inventory.Summarize(items, today))
	renderTable(e.out, view.Table(inventory.Filter(items, query), entity.AccessFor(sess), today))
}

func runSummary(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	_, client, err := e.requireSession()
	if err != nil {
		return err
	}
	s, err := client.Summary(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "As of %s\n", s.Date)
	renderSummary(e.out, s.Summary)
	return nil
}

func requireAdmin(sess *entity.Session) error {
	if !entity.AccessFor(sess).CanWrite() {
		return errors.New("this action requires an administrator session")
	}
	return nil
}

func runAdd(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	sess, client, err := e.requireSession()
	if err != nil {
		return err
	}
	if err := requireAdmin(sess); err != nil {
		return err
	}
	id, err := client.CreateItem(cmd.Context(), addInput)
	switch {
	case errors.Is(err, inventoryclient.ErrReloadFailed):
		// el artículo existe: no pedir un reintento que lo duplicaría
		fmt.Fprintf(e.out, "Item saved (%s), but the list could not be refreshed. Run 'inventoryctl list'.\n", id)
		e.log.Warn().Err(err).Str("id", id).Msg("recarga tras alta")
		return nil
	case errors.Is(err, inventoryclient.ErrMissingFields):
		renderError(e.out, "Please fill in at least name and quantity.")
		return err
	case err != nil:
		renderError(e.out, "Error saving item: "+err.Error())
		return err
	}
	fmt.Fprintf(e.out, "Item saved (%s)\n", id)
	printScreen(e, sess, client.Store().Current(), "", serverToday(cmd.Context(), e, client))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	sess, client, err := e.requireSession()
	if err != nil {
		return err
	}
	if err := requireAdmin(sess); err != nil {
		return err
	}
	confirm := func(id string) bool {
		if flagYes {
			return true
		}
		answer, err := e.prompt(fmt.Sprintf("Delete item %s? [y/N] ", id))
		return err == nil && (answer == "y" || answer == "Y" || answer == "yes")
	}
	err = client.DeleteItem(cmd.Context(), args[0], confirm)
	switch {
	case errors.Is(err, inventoryclient.ErrDeleteDeclined):
		fmt.Fprintln(e.out, "Cancelled")
		return nil
	case errors.Is(err, inventoryclient.ErrReloadFailed):
		fmt.Fprintln(e.out, "Item deleted, but the list could not be refreshed. Run 'inventoryctl list'.")
		e.log.Warn().Err(err).Str("id", args[0]).Msg("recarga tras baja")
		return nil
	case err != nil:
		renderError(e.out, "Error deleting item.")
		return err
	}
	fmt.Fprintln(e.out, "Item deleted")
	printScreen(e, sess, client.Store().Current(), "", serverToday(cmd.Context(), e, client))
	return nil
}
