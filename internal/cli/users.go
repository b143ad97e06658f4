package cli

import (
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/mvisser/enroll/internal/core/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
	Long:  "Manage user accounts from the command line",
}

var (
	addName      string
	addBirthdate string
	addAddress   string
)

var usersAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		existing, err := services.UserRepo.FindByUsername(cmd.Context(), username)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("user already exists: %s", username)
		}

		if _, err := time.Parse("2006-01-02", addBirthdate); err != nil {
			return fmt.Errorf("birthdate must be YYYY-MM-DD: %s", addBirthdate)
		}

		// Prompt for password
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		_, err = services.AccountService.Register(cmd.Context(), service.RegisterInput{
			Name:      addName,
			Birthdate: addBirthdate,
			Address:   addAddress,
			Username:  username,
			Password:  string(password),
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User '%s' created successfully\n", username)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		users, err := services.UserRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tBIRTHDATE\tCREATED AT")
		for _, user := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				user.ID,
				user.Username,
				user.Name,
				user.Birthdate,
				user.CreatedAt.Format(time.RFC3339),
			)
		}
		return w.Flush()
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&addName, "name", "", "display name")
	usersAddCmd.Flags().StringVar(&addBirthdate, "birthdate", "", "birthdate (YYYY-MM-DD)")
	usersAddCmd.Flags().StringVar(&addAddress, "address", "", "address")
	_ = usersAddCmd.MarkFlagRequired("name")
	_ = usersAddCmd.MarkFlagRequired("birthdate")
	_ = usersAddCmd.MarkFlagRequired("address")

	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}
