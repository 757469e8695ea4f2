// Command roundtable runs a multi-model round-robin conversation from a YAML
// configuration (or the built-in teaching demo), prints each turn as it
// completes, and saves the transcript with run metadata as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/roundtable-ai/roundtable"
	"github.com/roundtable-ai/roundtable/config"
	"github.com/roundtable-ai/roundtable/core"
	"github.com/roundtable-ai/roundtable/logging"
	"github.com/roundtable-ai/roundtable/model"
	"github.com/roundtable-ai/roundtable/model/anthropic"
	"github.com/roundtable-ai/roundtable/model/openai"
	"github.com/roundtable-ai/roundtable/runner"
	"github.com/roundtable-ai/roundtable/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML run configuration (default: built-in teaching demo)")
		outputPath = flag.String("output", "", "transcript output path (overrides config)")
		maxTurns   = flag.Int("turns", 0, "turn limit (overrides config)")
		local      = flag.Bool("local", false, "use the built-in demo against a local Ollama server")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credentials live in .env during development; absence is fine when the
	// keys are set in the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := loadConfig(*configPath, *local)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if *outputPath != "" {
		cfg.Output = *outputPath
	}
	if *maxTurns > 0 {
		cfg.MaxTurns = *maxTurns
	}

	roster, err := cfg.Roster()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logLevel := logging.LogLevelWarn
	if *verbose {
		logLevel = logging.LogLevelDebug
	}
	logger := logging.New(&logging.Config{Level: logLevel, Format: "text", Output: os.Stderr})

	printHeader(cfg, roster, provider)

	conv, err := roundtable.New(roster, provider, cfg.MaxTurns, cfg.Topic, func(o *roundtable.Options) {
		o.Store = store.NewFileStore(cfg.Output)
		o.Logger = logger
		o.OnTurn = printTurn
	})
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	rec, _, runErr := conv.RunAndSave(ctx)

	if rec == nil {
		log.Fatalf("run never started: %v", runErr)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("CONVERSATION %s\n", strings.ToUpper(rec.Status))
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nSummary: %s\n", store.Summary(rec))
	if isPersistenceError(runErr) {
		fmt.Printf("WARNING: transcript not saved to %s: %v\n", cfg.Output, runErr)
	} else {
		fmt.Printf("Conversation saved to: %s\n", cfg.Output)
	}
	printCost(rec)

	if runErr != nil {
		var provErr *core.ProviderError
		if errors.As(runErr, &provErr) || errors.Is(runErr, context.Canceled) {
			log.Printf("run ended early: %v", runErr)
		}
		os.Exit(1)
	}
}

func loadConfig(path string, local bool) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if local {
		return config.DefaultOllama(), nil
	}
	return config.Default(), nil
}

// buildProvider selects the completion backend once at startup; the turn loop
// never branches on it.
func buildProvider(cfg *config.Config) (model.Provider, error) {
	apiKey, baseURL, err := cfg.Credentials(os.Getenv)
	if err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewProvider(openai.WithAPIKey(apiKey)), nil
	case config.ProviderAnthropic:
		return anthropic.NewProvider(anthropic.WithAPIKey(apiKey)), nil
	case config.ProviderOllama:
		return openai.NewProvider(
			openai.WithAPIKey(apiKey),
			openai.WithBaseURL(baseURL),
			openai.WithProviderName("ollama"),
		), nil
	default:
		return nil, &core.ConfigError{Field: "provider", Reason: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}
}

func printHeader(cfg *config.Config, roster *core.Roster, provider model.Provider) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("ROUNDTABLE: %d participants via %s\n", roster.Len(), provider.Info().Provider)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\nTopic: %s\n\nParticipants:\n", cfg.Topic)
	for _, p := range roster.Participants() {
		fmt.Printf("  %s -> %s\n", p.Name, p.Model)
	}
	fmt.Printf("\nMax turns: %d\n", cfg.MaxTurns)
	fmt.Println("\n" + strings.Repeat("=", 60))
}

func printTurn(ev runner.TurnEvent) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("%s (turn %d):\n", strings.ToUpper(ev.Speaker), ev.Turn)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(ev.Message)
	if ev.Usage != nil {
		fmt.Printf("   [tokens: %d in / %d out]\n", ev.Usage.PromptTokens, ev.Usage.CompletionTokens)
	}
}

func printCost(rec *store.RunRecord) {
	if rec.Usage == nil || rec.Usage.TotalTokens == 0 {
		return
	}
	fmt.Printf("\nToken usage: %d in / %d out (total %d)\n",
		rec.Usage.TotalPromptTokens, rec.Usage.TotalCompletionTokens, rec.Usage.TotalTokens)
	if rec.Usage.TotalCostUSD > 0 {
		fmt.Printf("Estimated cost: $%.6f\n", rec.Usage.TotalCostUSD)
	}
}

func isPersistenceError(err error) bool {
	var perr *core.PersistenceError
	return errors.As(err, &perr)
}
