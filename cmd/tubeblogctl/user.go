package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createUserCmd = &cobra.Command{
	Use:     "create-user [username]",
	Short:   "Create an active user account",
	Example: `  tubeblogctl create-user alice --password 's3cret-pass' --email alice@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		email, _ := cmd.Flags().GetString("email")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.authService().Register(cmd.Context(), args[0], email, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user [username]",
	Short: "Delete a user together with their articles and exports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		store, err := a.storage(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		user, err := a.authService().DeleteUser(ctx, args[0])
		if err != nil {
			return err
		}

		removed := 0
		if store != nil {
			prefix := path.Join("articles", user.ID.String()) + "/"
			objects, err := store.ListFiles(ctx, prefix)
			if err != nil {
				a.logger.Warn("Failed to list exported articles", zap.String("prefix", prefix), zap.Error(err))
			}
			for _, object := range objects {
				if err := store.RemoveFile(ctx, object); err != nil {
					a.logger.Warn("Failed to remove exported article", zap.String("object", object), zap.Error(err))
					continue
				}
				removed++
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s (%d exported files removed)\n", user.Username, removed)
		return nil
	},
}

func init() {
	createUserCmd.Flags().String("password", "", "Password for the new account")
	createUserCmd.Flags().String("email", "", "Optional email address")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd, deleteUserCmd)
}
