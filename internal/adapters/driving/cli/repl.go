package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts a conversational session. Each line is parsed and executed
as an inventory command; referential commands ("make that 15") resolve
against the items mentioned earlier in the session.

Session commands: help, history, reset, exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if routerService == nil || parserService == nil || responder == nil {
		return errors.New("command services not configured")
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	sessionID := uuid.NewString()
	logger.Debug("Session %s started (interactive=%t)", sessionID, interactive)

	if interactive {
		cmd.Println(titleStyle.Render("StockTalk") + mutedStyle.Render("  session "+sessionID[:8]))
		cmd.Println(mutedStyle.Render(`Tell me about your stock ("add 10 apples"). Type "exit" to quit.`))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			cmd.Print(promptStyle.Render("> "))
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit":
			if interactive {
				cmd.Println(mutedStyle.Render("Bye."))
			}
			return nil
		case "help":
			printReplHelp(cmd)
			continue
		case "history":
			printReplHistory(cmd)
			continue
		case "reset":
			parserService.Reset()
			cmd.Println(mutedStyle.Render("Context cleared."))
			continue
		}

		result, parsed, err := routerService.Execute(cmd.Context(), line)
		if err != nil {
			cmd.Println(errorStyle.Render(responder.Failure(parsed, err)))
			continue
		}
		cmd.Println(successStyle.Render(responder.Success(parsed, result)))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func printReplHelp(cmd *cobra.Command) {
	cmd.Println(`Things you can say:
  add 10 apples at 1.50 each
  sold 3 apples
  make that 15
  how many apples do I have
  show me everything
  weekly report

Session commands: help, history, reset, exit`)
}

func printReplHistory(cmd *cobra.Command) {
	names := parserService.History()
	if len(names) == 0 {
		cmd.Println(mutedStyle.Render("No items mentioned yet."))
		return
	}
	cmd.Println("Recently mentioned:")
	for _, name := range names {
		cmd.Printf("  %s\n", name)
	}
}
