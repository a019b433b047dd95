// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"portrait-cli/internal/issue"
	"portrait-cli/internal/sshserver"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int

	// serveCmd exposes the consistency report over SSH.
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the consistency report over SSH",
		Long: `Serve starts a read-only SSH endpoint. Every connection runs the full
check pipeline and receives the rendered report, so dashboards and teammates
can inspect the project portrait without a local checkout:

  ssh -p <port> <host>`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "address to bind to (default from config, 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", -1, "port to listen on (default from config, 0 = auto-select)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg := sshserver.DefaultConfig()
	if cfg != nil {
		srvCfg.Host = cfg.Serve.Host
		srvCfg.Port = cfg.Serve.Port
	}
	if serveHost != "" {
		srvCfg.Host = serveHost
	}
	if servePort >= 0 {
		srvCfg.Port = servePort
	}

	srv := sshserver.New(srvCfg, func() (string, error) {
		report, err := runFullCheck()
		if err != nil {
			return "", err
		}
		return renderReport(report), nil
	})

	ctx := cmd.Context()
	if err := srv.Start(ctx); err != nil {
		explain(issue.ServeStartFailedId)
		return issue.WrapWithContext(err, "start report server", srvCfg.Host)
	}

	log.Info("serving consistency report", "address", srv.Addr())

	// Block until interrupted or the server fails.
	select {
	case <-ctx.Done():
		return srv.Stop()
	case err := <-srv.Err():
		_ = srv.Stop() //nolint:errcheck // Already failing; surface the serve error
		return issue.WrapWithOperation(err, "serve consistency report")
	}
}
