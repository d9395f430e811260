package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/buttonsmith/internal/config"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
	"github.com/thatcatcamp/buttonsmith/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Inspect the certificates Buttonsmith obtains for its public domains",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Long: `Show the ACME account settings and, for every configured domain, whether a
certificate is provisioned and when it expires. Domains come from tls.domains,
or the host of server.public_url when that list is empty.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		tlsManager, err := tls.NewManager(tlsCfg, logger.Nop())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create TLS manager: %v\n", err)
			os.Exit(1)
		}

		reports, err := tlsManager.Report(cmd.Context(), time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get certificate status: %v\n", err)
			os.Exit(1)
		}

		printTLSStatus(cmd.OutOrStdout(), tlsCfg, reports)
	},
}

func printTLSStatus(w io.Writer, cfg *tls.Config, reports []tls.DomainReport) {
	state := "disabled (enable with: buttonsmith config set tls.enabled true)"
	if cfg.Enabled {
		state = "enabled"
	}
	ca := "production"
	if cfg.Staging {
		ca = "staging"
	}
	email := cfg.Email
	if email == "" {
		email = "(unset)"
	}

	fmt.Fprintf(w, "TLS:       %s\n", state)
	fmt.Fprintf(w, "CA:        Let's Encrypt %s\n", ca)
	fmt.Fprintf(w, "Email:     %s\n", email)
	fmt.Fprintf(w, "Cert dir:  %s\n", cfg.CertDir)
	fmt.Fprintf(w, "HTTPS:     :%s\n\n", config.GetString("server.https_port"))

	if len(reports) == 0 {
		fmt.Fprintln(w, "No domains configured. Set tls.domains or server.public_url.")
		return
	}

	fmt.Fprintf(w, "%-30s %-12s %-20s %-12s %s\n", "Domain", "State", "Issuer", "Expires", "Days Left")
	for _, r := range reports {
		if r.Certificate == nil {
			fmt.Fprintf(w, "%-30s %-12s %-20s %-12s %s\n", r.Domain, r.State, "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "%-30s %-12s %-20s %-12s %d\n",
			r.Domain,
			r.State,
			r.Certificate.Issuer,
			r.Certificate.NotAfter.Format("2006-01-02"),
			r.Certificate.DaysUntilExpiry,
		)
	}
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
