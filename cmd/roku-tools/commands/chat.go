package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roku-tools/internal/assistant"
	"github.com/ironsheep/roku-tools/internal/gemini"
)

var chatModel string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant through Gemini",
	Long: `Start a text conversation with the assistant. The model calls the tools as
needed. Requires GOOGLE_API_KEY. Type "exit" or press Ctrl-D to leave.

Examples:
  roku-tools chat
  roku-tools chat --model gemini-2.5-pro`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		reg, err := newRegistry(assistant.Deps{})
		if err != nil {
			return err
		}

		model := chatModel
		if model == "" {
			model = cfg.GeminiModel
		}
		chat := gemini.NewChat(client.Models, reg, model, logger.With("component", "gemini"))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, gemini.Greeting)

		in := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				fmt.Fprintln(out)
				return in.Err()
			}
			line := strings.TrimSpace(in.Text())
			switch line {
			case "":
				continue
			case "exit", "quit":
				return nil
			}

			answer, err := chat.Send(ctx, line)
			if err != nil {
				logger.Error("chat turn failed", "err", err)
				fmt.Fprintln(out, "Oh dear, I couldn't reach my brain just now. Please try again.")
				continue
			}
			fmt.Fprintln(out, answer)
		}
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Gemini model (overrides ROKU_GEMINI_MODEL)")
}
