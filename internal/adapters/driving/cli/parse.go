package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Parse a command without executing it",
	Long: `Runs the understanding pipeline only: normalisation, intent
classification, and entity extraction. Prints the parse result as JSON and
changes nothing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parserService == nil {
		return errors.New("parser service not configured")
	}

	text := strings.Join(args, " ")
	parsed, err := parserService.Parse(cmd.Context(), text)

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
