package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/agora-ai/agora/internal/catalog"
	cfgPkg "github.com/agora-ai/agora/pkg/config"
	"github.com/agora-ai/agora/pkg/llm"
	"github.com/agora-ai/agora/pkg/rag"
	"github.com/agora-ai/agora/pkg/store"
	"github.com/agora-ai/agora/server"
)

type Config struct {
	APIKey    string
	DBUrl     string
	Model     string
	MaxTokens int
	TopK      int
	TableName string
	VectorDim int
	Serve     bool
	Addr      string
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Config {
	var config Config
	var configPath string

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&config.APIKey, "api-key", os.Getenv("GOOGLE_API_KEY"), "Google AI API key")
	flag.StringVar(&config.DBUrl, "db-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	flag.StringVar(&config.Model, "model", "gemini-2.0-flash-001", "LLM model to use")
	flag.IntVar(&config.MaxTokens, "max-tokens", 2048, "Maximum tokens for LLM response")
	flag.IntVar(&config.TopK, "top-k", 3, "Number of excerpts retrieved per question")
	flag.StringVar(&config.TableName, "table", "excerpts", "PostgreSQL table name")
	flag.IntVar(&config.VectorDim, "vector-dim", 768, "Vector dimension")
	flag.BoolVar(&config.Serve, "serve", false, "Run the HTTP/websocket server instead of the chat loop")
	flag.StringVar(&config.Addr, "addr", ":8080", "Server listen address")
	flag.Parse()

	if cfg, err := cfgPkg.LoadConfig(configPath); err == nil {
		if cfg.LLM.APIKey != "" {
			config.APIKey = cfg.LLM.APIKey
		}
		if cfg.Database.URL != "" {
			config.DBUrl = cfg.Database.URL
		}
		config.Model = cfg.LLM.Model
		config.MaxTokens = cfg.LLM.MaxTokens
		config.TableName = cfg.Database.TableName
		config.VectorDim = cfg.Database.VectorDim
		config.TopK = cfg.Retrieval.TopK
	}

	return config
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	ctx := context.Background()

	embedder, err := llm.NewEmbedderWithConfig(ctx, llm.EmbedderConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize embedder: %v", err)
	}

	chatEngine, err := llm.NewChatWithConfig(ctx, llm.ChatConfig{
		APIKey:      config.APIKey,
		Model:       config.Model,
		Temperature: 0.7,
		MaxTokens:   config.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize chat engine: %v", err)
	}

	vectorStore, err := store.NewWithConfig(ctx, store.VectorStoreConfig{
		ConnString: config.DBUrl,
		TableName:  config.TableName,
		VectorDim:  config.VectorDim,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize vector store: %v", err)
	}
	defer vectorStore.Close()

	orchestrator := rag.New(embedder, vectorStore, config.TopK)
	engine := rag.NewEngine(orchestrator, chatEngine, rag.EngineConfig{TopK: config.TopK})

	if config.Serve {
		return server.New(engine, server.Config{Addr: config.Addr}).Start()
	}

	return chatLoop(ctx, engine)
}

func chatLoop(ctx context.Context, engine *rag.Engine) error {
	color.Cyan("\nAsk the philosophers (type 'exit' to quit)")
	color.White("Commands: /use <id> to pick a philosopher, /panel [region] [era] for multiple perspectives, /list to see the catalog")

	scanner := bufio.NewScanner(os.Stdin)
	userPrompt := color.New(color.FgGreen).PrintfFunc()
	answerPrompt := color.New(color.FgCyan).PrintfFunc()

	current := "socrates"

	for {
		userPrompt("\nYou (%s): ", current)
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.ToLower(query) == "exit" {
			break
		}

		if strings.HasPrefix(query, "/list") {
			for _, p := range catalog.Philosophers() {
				fmt.Printf("  %-16s %s (%s)\n", p.ID, p.Name, p.Period)
			}
			continue
		}

		if strings.HasPrefix(query, "/use ") {
			id := strings.TrimSpace(strings.TrimPrefix(query, "/use "))
			if _, ok := catalog.PhilosopherByID(id); !ok {
				color.Red("Unknown philosopher: %s", id)
				continue
			}
			current = id
			color.Green("Now asking %s", id)
			continue
		}

		if strings.HasPrefix(query, "/panel") {
			region, era := "all", "all"
			fields := strings.Fields(strings.TrimPrefix(query, "/panel"))
			if len(fields) > 0 {
				region = fields[0]
			}
			if len(fields) > 1 {
				era = fields[1]
			}

			userPrompt("Panel question: ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}

			spinner := getSpinner(" Gathering perspectives...")
			answer := engine.AskPanel(ctx, question, region, era)
			spinner.Finish()

			fmt.Println()
			answerPrompt("Overview: %s\n", answer.Overview)
			for _, p := range answer.Perspectives {
				philosopher, _ := catalog.PhilosopherByID(p.PhilosopherID)
				color.Yellow("\n%s (%s)", p.Name, philosopher.School)
				fmt.Println(p.Response)
			}
			if len(answer.Themes) > 0 {
				color.White("\nThemes: %s", strings.Join(answer.Themes, ", "))
			}
			continue
		}

		spinner := getSpinner(" Consulting the archive...")
		answer, err := engine.AskAuthor(ctx, query, current, true)
		spinner.Finish()

		if err != nil {
			color.Red("Error: %v\n", err)
			continue
		}

		fmt.Println()
		answerPrompt("%s\n", answer.Answer)
		if answer.HasContext {
			color.White("\nSources: %s", strings.Join(answer.Sources, ", "))
		}
	}

	return nil
}
