package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

var sayJSON bool

var sayCmd = &cobra.Command{
	Use:   "say [text...]",
	Short: "Run one natural language command",
	Long: `Parses and executes a single natural language inventory command.

Examples:
  stocktalk say add 10 apples
  stocktalk say "sold 3 bananas"
  stocktalk say how many apples do I have`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func init() {
	sayCmd.Flags().BoolVar(&sayJSON, "json", false, "output the parse result as JSON")
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	if routerService == nil || responder == nil {
		return errors.New("command services not configured")
	}

	text := strings.Join(args, " ")
	result, parsed, err := routerService.Execute(cmd.Context(), text)

	if sayJSON {
		return outputSayJSON(cmd, parsed, err)
	}

	if err != nil {
		// Conversation-level failures get a friendly reply, not an error exit.
		cmd.Println(errorStyle.Render(responder.Failure(parsed, err)))
		return nil
	}

	cmd.Println(successStyle.Render(responder.Success(parsed, result)))
	return nil
}

func outputSayJSON(cmd *cobra.Command, parsed *domain.ParsedCommand, err error) error {
	pc := domain.ParsedCommand{Intent: domain.IntentUnknown}
	if parsed != nil {
		pc = *parsed
	}
	data, mErr := json.MarshalIndent(pc.Result(err), "", "  ")
	if mErr != nil {
		return fmt.Errorf("marshalling parse result: %w", mErr)
	}
	cmd.Println(string(data))
	return nil
}
