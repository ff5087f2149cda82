package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bwks/cupi/pkg/config"
	"github.com/bwks/cupi/pkg/cupi"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cupi",
	Short: "Provisioning CLI for Cisco Unity Connection",
	Long: `A command-line interface for provisioning Cisco Unity Connection
through its REST API (CUPI). Manages users, schedules and call handler
templates without the web admin UI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cupi/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("host", "", "Unity Connection host")
	rootCmd.PersistentFlags().String("username", "", "user with REST API access")
	rootCmd.PersistentFlags().String("password", "", "password (prompted when omitted)")
	rootCmd.PersistentFlags().Bool("insecure", false, "skip TLS certificate verification")

	viper.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("auth.username", rootCmd.PersistentFlags().Lookup("username"))
	viper.BindPFlag("auth.password", rootCmd.PersistentFlags().Lookup("password"))
	viper.BindPFlag("server.insecure_tls", rootCmd.PersistentFlags().Lookup("insecure"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func GetConfig() *config.Config {
	return cfg
}

// newClient builds a CUPI client from the loaded configuration,
// prompting for the password when it is not configured.
func newClient() (*cupi.Client, error) {
	if cfg.Server.Host == "" {
		return nil, fmt.Errorf("no Unity Connection host configured (use --host or CUPI_SERVER_HOST)")
	}

	password := cfg.Auth.Password
	if password == "" {
		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		password = string(passwordBytes)
		fmt.Println() // New line after password input
	}

	opts := []cupi.Option{}
	if cfg.Server.InsecureTLS {
		opts = append(opts, cupi.WithInsecureTLS())
	}
	if cfg.Server.Timeout > 0 {
		opts = append(opts, cupi.WithTimeout(cfg.Server.Timeout))
	}

	return cupi.NewClient(cfg.Server.Host, cfg.Auth.Username, password, opts...), nil
}
