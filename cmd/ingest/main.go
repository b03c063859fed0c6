package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/agora-ai/agora/internal/catalog"
	cfgPkg "github.com/agora-ai/agora/pkg/config"
	"github.com/agora-ai/agora/pkg/fetcher"
	"github.com/agora-ai/agora/pkg/ingest"
	"github.com/agora-ai/agora/pkg/llm"
	"github.com/agora-ai/agora/pkg/store"
)

type Config struct {
	APIKey       string
	DBUrl        string
	BooksDir     string
	TableName    string
	VectorDim    int
	ChunkSize    int
	ChunkOverlap int
	RateLimit    float64
	Download     bool
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
	flag.StringVar(&config.BooksDir, "books-dir", "philosophy_data/books", "Directory of source texts, one subdirectory per philosopher")
	flag.StringVar(&config.TableName, "table", "excerpts", "PostgreSQL table name")
	flag.IntVar(&config.VectorDim, "vector-dim", 768, "Vector dimension")
	flag.IntVar(&config.ChunkSize, "chunk-size", 1000, "Size of text chunks")
	flag.IntVar(&config.ChunkOverlap, "chunk-overlap", 100, "Overlap between adjacent chunks")
	flag.Float64Var(&config.RateLimit, "rate-limit", 2.0, "Embedding calls per second")
	flag.BoolVar(&config.Download, "download", false, "Download catalog philosophers' works before ingesting")
	flag.Parse()

	if cfg, err := cfgPkg.LoadConfig(configPath); err == nil {
		if cfg.LLM.APIKey != "" {
			config.APIKey = cfg.LLM.APIKey
		}
		if cfg.Database.URL != "" {
			config.DBUrl = cfg.Database.URL
		}
		config.TableName = cfg.Database.TableName
		config.VectorDim = cfg.Database.VectorDim
		config.BooksDir = cfg.Ingest.BooksDir
		config.ChunkSize = cfg.Ingest.ChunkSize
		config.ChunkOverlap = cfg.Ingest.ChunkOverlap
		config.RateLimit = cfg.Ingest.RateLimit
	}

	return config
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("chunks"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	ctx := context.Background()

	if config.Download {
		if err := downloadBooks(ctx, config.BooksDir); err != nil {
			return err
		}
	}

	embedder, err := llm.NewEmbedderWithConfig(ctx, llm.EmbedderConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize embedder: %v", err)
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

	var bar *progressbar.ProgressBar
	ingestor := ingest.NewWithConfig(embedder, vectorStore, ingest.IngestConfig{
		ChunkSize:    config.ChunkSize,
		ChunkOverlap: config.ChunkOverlap,
		RateLimit:    config.RateLimit,
		OnChunk: func(source string, index, total int) {
			if bar == nil || bar.GetMax() != total {
				bar = getProgressBar(total, fmt.Sprintf(" Embedding %s...", source))
			}
			bar.Add(1)
		},
	})

	color.Blue("\nIngesting texts from %s\n", config.BooksDir)

	results, err := ingestor.IngestDir(ctx, config.BooksDir)
	if err != nil {
		return fmt.Errorf("ingestion failed: %v", err)
	}

	var stored, skipped int
	for _, r := range results {
		stored += r.Stored
		skipped += r.Skipped
	}
	color.Green("\n✓ Ingested %d sources: %d chunks stored, %d skipped\n",
		len(results), stored, skipped)

	return nil
}

func downloadBooks(ctx context.Context, booksDir string) error {
	f := fetcher.NewWithConfig(fetcher.FetcherConfig{
		OnProgress: func(title string) {
			color.Green("  ✓ %s", title)
		},
	})

	color.Blue("\nDownloading public-domain works for %d philosophers\n",
		len(catalog.Philosophers()))

	for _, p := range catalog.Philosophers() {
		dir := filepath.Join(booksDir, p.ID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		color.White("\n%s:", p.Name)
		written, err := f.DownloadAuthor(ctx, p.Name, dir)
		if err != nil {
			color.Red("  failed: %v", err)
			continue
		}
		if len(written) == 0 {
			color.Yellow("  nothing new")
		}
	}

	return nil
}
