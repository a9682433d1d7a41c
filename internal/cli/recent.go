package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planbeau/booking-service/internal/infra/clientstore"
	"github.com/planbeau/booking-service/internal/service/sessions"
	"github.com/planbeau/booking-service/internal/service/sessions/models"
	"github.com/planbeau/booking-service/pkg/logger"
)

const localSession = "local"

func recentCmd(opts *options) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Manage recent searches kept in the local database",
	}
	cmd.PersistentFlags().StringVar(&session, "session", localSession, "Session ID")

	show := func(cmd *cobra.Command, resp *models.RecentSearchesResponse) error {
		return opts.render(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			if len(resp.Searches) == 0 {
				_, err := fmt.Fprintln(w, "No recent searches")
				return err
			}
			for i, q := range resp.Searches {
				fmt.Fprintf(w, "%d. %s\n", i+1, q)
			}
			return nil
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recent searches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessions(opts, func(svc *sessions.Service) error {
				resp, err := svc.RecentSearches(cmd.Context(), session)
				if err != nil {
					return err
				}
				return show(cmd, resp)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <query>",
		Short: "Remember a search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessions(opts, func(svc *sessions.Service) error {
				resp, err := svc.AddRecentSearch(cmd.Context(), session, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return show(cmd, resp)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessions(opts, func(svc *sessions.Service) error {
				if err := svc.ClearRecentSearches(cmd.Context(), session); err != nil {
					return err
				}
				return show(cmd, &models.RecentSearchesResponse{Searches: []string{}})
			})
		},
	})

	return cmd
}

// withSessions opens the SQLite state database for the duration of fn
func withSessions(opts *options, fn func(svc *sessions.Service) error) error {
	path, err := opts.databasePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	store, err := clientstore.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(sessions.NewService(store, 0, logger.NewNop()))
}

