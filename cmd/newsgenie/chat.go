package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newsgenie-ai/newsgenie/config"
	"github.com/newsgenie-ai/newsgenie/genie"
	"github.com/newsgenie-ai/newsgenie/models"
	"github.com/newsgenie-ai/newsgenie/news"
	"github.com/newsgenie-ai/newsgenie/provider"
	"github.com/newsgenie-ai/newsgenie/websearch"
)

func chatCMD() *cobra.Command {
	var cfgPath string
	var category string
	chat := &cobra.Command{
		Use:   "chat",
		Short: "Interactive terminal chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			llm, err := provider.NewProvider(cfg.LLM)
			if err != nil {
				return err
			}

			orch := genie.NewOrchestrator(llm,
				news.NewFetcher(cfg.Sources.NewsAPI),
				websearch.NewAdapter(cfg.Sources.WebSearch),
			)

			return runChatLoop(cmd.Context(), orch, category)
		},
	}
	chat.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	chat.Flags().StringVar(&category, "category", "", "news category hint (technology, finance, sports, general)")

	return chat
}

// runChatLoop reads queries line by line, keeping one conversation history
// for the lifetime of the process.
func runChatLoop(ctx context.Context, orch *genie.Orchestrator, category string) error {
	fmt.Println("NewsGenie ready. Type a question, or 'exit' to quit.")

	var history []models.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			return nil
		}

		result, err := orch.Run(ctx, genie.TurnInput{
			Query:        query,
			History:      history,
			CategoryHint: category,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "turn failed: %v\n", err)
			continue
		}
		history = result.History

		fmt.Printf("\n%s\n", result.Answer)
		if len(result.Items) > 0 {
			fmt.Println("\nFetched items:")
			for i, item := range result.Items {
				fmt.Printf("  %d. %s (%s) %s\n", i+1, item.Title, item.Source, item.URL)
			}
		}
		fmt.Println()
	}
}
