package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/duel-client/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Play Wordle against the AI from the terminal",
	Long: `duel is a terminal client for Wordle Duel. You and the AI race to
find the same hidden word; the server scores every guess and the client
shows both boards side by side. The AI board stays hidden until the game
is over.

Without a subcommand, duel starts a game.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is $HOME/.config/duel/config.yaml)")
	pf.String("server", "", "game server base URL")
	pf.Duration("timeout", 0, "per-request timeout, 0 waits indefinitely")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")
	pf.String("log-file", "", "log file path")
	pf.Bool("plain", false, "use the line-mode interface")
	pf.Bool("auto-start", true, "start a game as soon as the client opens")

	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("server.url", pf.Lookup("server"))
	_ = viper.BindPFlag("server.timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("ui.plain", pf.Lookup("plain"))
	_ = viper.BindPFlag("ui.auto_start", pf.Lookup("auto-start"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DUEL")
	// e.g. DUEL_SERVER_URL for server.url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine
	_ = viper.ReadInConfig()
}
