package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/duel-client/internal/config"
	"github.com/robalobadob/wordle/apps/duel-client/internal/console"
	"github.com/robalobadob/wordle/apps/duel-client/internal/controller"
	"github.com/robalobadob/wordle/apps/duel-client/internal/logging"
	"github.com/robalobadob/wordle/apps/duel-client/internal/remote"
	"github.com/robalobadob/wordle/apps/duel-client/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a duel",
	Long: `Start a duel against the AI.

The full-screen interface is used on a terminal. When stdin or stdout is
not a terminal, or with --plain, duel falls back to a line-mode console
that reads one guess per line.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	plain := cfg.UI.Plain || !interactive()
	closer, err := logging.Setup(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: plain,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := remote.New(cfg.Server.URL,
		remote.WithTimeout(cfg.Server.Timeout),
		remote.WithUserAgent("duel/"+Version),
	)
	ctrl := controller.New(client)

	log.Info().
		Str("server", client.BaseURL()).
		Bool("plain", plain).
		Dur("timeout", cfg.Server.Timeout).
		Msg("starting duel client")

	if plain {
		return console.New(ctrl, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx, cfg.UI.AutoStart)
	}
	return tui.Run(ctx, ctrl, tui.Options{
		AutoStart: cfg.UI.AutoStart,
		Server:    client.BaseURL(),
	})
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
