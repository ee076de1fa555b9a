// Package cmd implements the menuctl command line: browsing the menu catalog
// with the same search, filter and sort rules as the storefront API.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
)

const envPrefix = "MENUCTL"

// Execute runs the root command with signal handling
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loadEnvFiles()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadEnvFiles applies .env then .env.local when present
func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
}

// NewRootCmd builds the command tree. Each call gets its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Browse the storefront menu",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().String("catalog", "", "menu catalog file (.yaml, .yml or .json); defaults to the built-in menu")
	root.PersistentFlags().StringP("output", "o", "table", "output format: table or json")

	root.AddCommand(newListCmd(v), newCategoriesCmd(v))
	return root
}

func loadProducts(v *viper.Viper) ([]models.Product, error) {
	path := v.GetString("catalog")
	if path == "" {
		return repository.DefaultProducts(), nil
	}
	repo, err := repository.NewRepositoryFromFile(path)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(context.Background())
}
