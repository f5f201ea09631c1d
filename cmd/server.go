package cmd

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speedcheck/internal/netbench"
	"speedcheck/internal/tui/styles"
	"speedcheck/internal/units"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the drain server for speedcheck clients",
	Long: `Accepts one connection at a time and discards everything the client
sends until it closes its write side. Runs until interrupted.`,
	RunE: runServer,
}

func init() {
	def := netbench.DefaultServerConfig()
	f := serverCmd.Flags()
	f.StringP("ip-address", "a", def.Address, "The IP address to bind the server")
	f.IntP("port", "p", 0, "The port that the server will be listening to (prompted if empty)")
	bindFlags("server", f)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := netbench.ServerConfig{
		Address:   viper.GetString("server.ip-address"),
		Port:      viper.GetInt("server.port"),
		OnSession: logSession,
	}
	if cfg.Port == 0 {
		port, err := askPort("Port")
		if err != nil {
			return err
		}
		cfg.Port = port
	}

	srv, err := netbench.Listen(cfg)
	if err != nil {
		return err
	}
	defer srv.Close()
	fmt.Println(styles.Success.Render(fmt.Sprintf("👂 Server ready on %s...", srv.Addr())))

	ctx, stop := interruptContext(cmd)
	defer stop()
	return srv.Serve(ctx)
}

func logSession(s netbench.Session) {
	host, port, err := net.SplitHostPort(s.Remote.String())
	if err != nil {
		host, port = s.Remote.String(), "?"
	}
	if s.Err != nil {
		fmt.Println(styles.Warn.Render(fmt.Sprintf("⚠️  %s:%s dropped after %s: %v",
			host, port, units.Bytes(float64(s.Bytes), "B"), s.Err)))
		return
	}
	fmt.Printf("Done with %s on port %s %s\n", styles.Value.Render(host), port,
		styles.Subtle.Render(fmt.Sprintf("(%s in %s, session %s)",
			units.Bytes(float64(s.Bytes), "B"), units.Seconds(s.Elapsed.Seconds(), "s"), s.ID)))
}
