package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/buttonsmith/internal/backup"
	"github.com/thatcatcamp/buttonsmith/internal/config"
	"github.com/thatcatcamp/buttonsmith/internal/db"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Backup and restore saved projects",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot saved projects now",
	Run: func(cmd *cobra.Command, args []string) {
		manager := initBackup()

		path, err := manager.Create(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating backup: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Backup written to %s\n", path)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, oldest first",
	Run: func(cmd *cobra.Command, args []string) {
		manager := initBackup()

		paths, err := manager.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			fmt.Println("No backups found")
			return
		}
		for _, p := range paths {
			fmt.Println(filepath.Base(p))
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore projects from a snapshot",
	Long:  "Restore projects from a snapshot. Projects with the same name are overwritten; others are kept.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := initBackup()

		path := args[0]
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(manager.Dir, args[0])
		}

		n, err := backup.Restore(db.GetDB(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Restored %d projects\n", n)
	},
}

// initBackup loads config, opens the database and returns the manager
func initBackup() *backup.Manager {
	if err := initConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return backup.NewManager(config.GetString("backups.path"), config.GetInt("backups.keep"))
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
