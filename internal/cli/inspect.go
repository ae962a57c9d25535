package cli

import (
	"io"

	coro_ebiten "github.com/plus3/corotick/coro/debugui/ebiten"
	"github.com/plus3/corotick/internal/demo"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Open a window running the demonstration routine under the task inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mono := demo.NewMono(io.Discard, a.logger)
			game := coro_ebiten.NewGame(mono.Scheduler(), "corotick inspector", 1280, 720)
			return game.Run()
		},
	}
}
