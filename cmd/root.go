package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"speedcheck/internal/banner"
	"speedcheck/internal/report"
	"speedcheck/internal/stats"
	"speedcheck/internal/tui/live"
	"speedcheck/internal/tui/prompt"
	"speedcheck/internal/tui/styles"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "speedcheck",
	Short: "speedcheck - disk and network throughput micro-benchmarks",
	Long: `
speedcheck measures raw storage and network throughput.

  disk    write random blocks with fsync, read them back from shuffled offsets
  server  accept one client at a time and discard everything it sends
  client  stream blocks to a server and time every send call

Every flag can also be set in the config file or through SPEEDCHECK_*
environment variables (e.g. SPEEDCHECK_DISK_SIZE=512).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Println(banner.GetString())
		cmd.Usage()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("❌ "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.speedcheck.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Disable the progress line")
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(diskCmd, clientCmd, serverCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".speedcheck")
		}
	}
	viper.SetEnvPrefix("speedcheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, styles.Warn.Render("⚠️  config: "+err.Error()))
		}
	}
}

// bindFlags exposes every flag of a subcommand as "<prefix>.<flag>".
func bindFlags(prefix string, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(prefix+"."+f.Name, f)
	})
}

func newProgress() stats.Progress {
	if viper.GetBool("quiet") {
		return stats.Discard
	}
	return live.NewLine(os.Stdout)
}

// interruptContext is cancelled on the first Ctrl-C so runs can clean up.
// The handler is released right away, so a second Ctrl-C kills the process.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// emit writes the JSON file when requested, the console report otherwise.
func emit(sum *report.Summary, jsonOut string, text func(io.Writer, *report.Summary) error) error {
	if jsonOut == "" {
		return text(os.Stdout, sum)
	}
	if err := report.WriteJSON(sum, jsonOut); err != nil {
		return err
	}
	fmt.Println(styles.Success.Render("✅ Results saved to " + jsonOut))
	return nil
}

func askPort(label string) (int, error) {
	answer, err := prompt.Ask(label, "5201")
	if err != nil {
		return 0, err
	}
	port, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", answer)
	}
	return port, nil
}
