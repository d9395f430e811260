package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/buttonsmith/internal/config"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Buttonsmith configuration",
	Long:  "View and modify Buttonsmith configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(config.Format(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every setting grouped by section. Values that do not come from the
config file are marked with their source: a BUTTONSMITH_* environment variable
or the built-in default.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printEntries(cmd.OutOrStdout(), config.Entries())
	},
}

// printEntries writes entries under a header per top-level section
func printEntries(w io.Writer, entries []config.Entry) {
	section := ""
	for _, e := range entries {
		head, name, found := strings.Cut(e.Key, ".")
		if !found {
			head, name = "", e.Key
		}
		if head != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "[%s]\n", head)
			section = head
		}

		line := fmt.Sprintf("  %-18s %s", name, e.Value)
		switch e.Source {
		case "env":
			line += fmt.Sprintf("  (env %s)", config.EnvName(e.Key))
		case "default":
			line += "  (default)"
		}
		fmt.Fprintln(w, line)
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	return config.InitConfig(path)
}

// newLogger builds the process logger from the log.* keys
func newLogger() (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         config.GetString("log.level"),
		HumanReadable: config.GetBool("log.human"),
	})
}
