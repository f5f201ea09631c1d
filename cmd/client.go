package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speedcheck/internal/netbench"
	"speedcheck/internal/tui/prompt"
	"speedcheck/internal/tui/styles"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Measure network throughput and latency against a speedcheck server",
	RunE:  runClient,
}

func init() {
	def := netbench.DefaultClientConfig()
	f := clientCmd.Flags()
	f.StringP("ip-address", "a", "", "The server IP address (prompted if empty)")
	f.IntP("port", "p", 0, "The server port (prompted if empty)")
	f.IntP("size", "s", def.SizeMB, "Total MB to transfer")
	f.IntP("block-size", "b", def.BlockSize, "The block size for transfer in bytes")
	f.StringP("json", "j", "", "Output to json file")
	f.Bool("fresh-buffers", false, "Generate a new random payload for every block")
	bindFlags("client", f)
}

func runClient(cmd *cobra.Command, args []string) error {
	cfg := netbench.ClientConfig{
		Address:      viper.GetString("client.ip-address"),
		Port:         viper.GetInt("client.port"),
		SizeMB:       viper.GetInt("client.size"),
		BlockSize:    viper.GetInt("client.block-size"),
		FreshBuffers: viper.GetBool("client.fresh-buffers"),
		Progress:     newProgress(),
	}
	jsonOut := viper.GetString("client.json")

	var err error
	if cfg.Address == "" {
		if cfg.Address, err = prompt.Ask("Server IP", "127.0.0.1"); err != nil {
			return err
		}
	}
	if cfg.Port == 0 {
		if cfg.Port, err = askPort("Server port"); err != nil {
			return err
		}
	}

	c, err := netbench.NewClient(cfg)
	if err != nil {
		return err
	}
	if !viper.GetBool("quiet") {
		fmt.Println(styles.Title.Render("🚀 Transfer to " + cfg.HostPort()))
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	res, err := c.Run(ctx)
	if err != nil {
		return err
	}
	sum, err := res.Summary()
	if err != nil {
		return err
	}
	return emit(sum, jsonOut, netbench.WriteText)
}
