package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roku-tools/internal/assistant"
	"github.com/ironsheep/roku-tools/internal/server"
	"github.com/ironsheep/roku-tools/internal/tools"
)

var outputJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Long: `List the available tools with their descriptions.

Examples:
  roku-tools tools
  roku-tools tools --json | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry(assistant.Deps{})
		if err != nil {
			return err
		}
		defs := server.New(reg, logger).ToolDefinitions()

		out := cmd.OutOrStdout()
		if outputJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(defs)
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, d := range defs {
			fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Description)
		}
		return tw.Flush()
	},
}

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-arguments]",
	Short: "Call one tool",
	Long: `Call one tool and print the text it would speak.

Arguments are a JSON object. Use "-" to read them from stdin.

Examples:
  roku-tools call get_current_datetime '{"timezone":"Europe/Paris"}'
  roku-tools call search_news '{"query":"space launch","max_results":3}'
  echo '{"city":"Tokyo"}' | roku-tools call get_weather -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readArguments(cmd.InOrStdin(), args[1:])
		if err != nil {
			return err
		}

		reg, err := newRegistry(assistant.Deps{})
		if err != nil {
			return err
		}
		res, err := reg.Call(cmd.Context(), args[0], raw)
		if err != nil {
			return fmt.Errorf("%w (run 'roku-tools tools' for the list)", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		if res.Failed() {
			return fmt.Errorf("%s failed (%s): %v", args[0], res.Kind, res.Err)
		}
		return nil
	},
}

func readArguments(stdin io.Reader, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}
	data := []byte(args[0])
	if args[0] == "-" {
		var err error
		if data, err = io.ReadAll(stdin); err != nil {
			return nil, fmt.Errorf("read arguments: %w", err)
		}
	}
	if s := strings.TrimSpace(string(data)); s != "" && !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("arguments are not valid JSON: %s", s)
	}
	return data, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Config is not needed to print the version.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "roku-tools %s\n", version)
		fmt.Fprintf(out, "  Build time: %s\n", buildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", gitCommit)
		fmt.Fprintf(out, "  Tools: %d\n", len(tools.Names))
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&outputJSON, "json", false, "print the MCP tool definitions as JSON")
}
