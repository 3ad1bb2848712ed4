package main

import (
	"fmt"
	"time"

	"campus-placement-backend/internal/api/routes"
	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		kind      string
		accountID string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the role, effective identity and visible identities of an organization account",
		RunE: func(cmd *cobra.Command, args []string) error {
			orgKind := models.OrganizationKind(kind)
			if !orgKind.IsValid() {
				return fmt.Errorf("invalid --kind %q: must be enterprise or teacher", kind)
			}
			id, err := uuid.Parse(accountID)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}

			db, err := a.openDB(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			services := routes.NewServices(db, a.cfg)
			operator := &auth.Caller{Kind: models.AccountKindAdmin}

			start := time.Now()
			identity, err := services.Accounts.Identity(cmd.Context(), operator, orgKind, id)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "resolve",
				DurationMS: time.Since(start).Milliseconds(),
				Result:     identity,
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Account kind: enterprise or teacher (required)")
	cmd.Flags().StringVar(&accountID, "id", "", "Account UUID (required)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
