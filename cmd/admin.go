package cmd

import (
	"fmt"

	"site-cms/feature/admins"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminName     string
	adminPassword string
	adminRole     string
)

// adminCmd groups account maintenance commands
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

// adminCreateCmd represents the admin create command
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		admin, err := a.admins.Service().Create(cmd.Context(), admins.CreateRequest{
			Email:    adminEmail,
			Name:     adminName,
			Password: adminPassword,
			Role:     adminRole,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created admin %s (%s)\n", admin.Email, admin.ID)
		return nil
	},
}

// adminResetCmd represents the admin reset-password command
var adminResetCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Replace the password of an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		err = a.admins.Service().ResetPassword(cmd.Context(), admins.ResetPasswordRequest{
			Email:       adminEmail,
			NewPassword: adminPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Password reset for %s\n", adminEmail)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminCreateCmd, adminResetCmd)

	adminCmd.PersistentFlags().StringVar(&adminEmail, "email", "", "Account email")
	adminCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "Account password")
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "Display name")
	adminCreateCmd.Flags().StringVar(&adminRole, "role", admins.DefaultRole, "Account role")

	_ = adminCmd.MarkPersistentFlagRequired("email")
	_ = adminCmd.MarkPersistentFlagRequired("password")
	_ = adminCreateCmd.MarkFlagRequired("name")
}
