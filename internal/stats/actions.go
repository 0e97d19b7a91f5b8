// Package stats implements the stats command: aggregate reporting
// over the source table, including the natural-language distribution
// of entry descriptions.
package stats

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/pemistahl/lingua-go"
	"github.com/ranksync/ranksync/models"
	"github.com/ranksync/ranksync/pkg/table"
	"github.com/urfave/cli/v2"
)

// detectorLanguages covers the languages that actually show up in
// popular-repository listing descriptions.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Russian,
}

func StatsAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	source, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		logger.Error("failed to read source document", "path", cfg.SourcePath, "error", err)
		os.Exit(2)
	}

	entries, skips := table.Parse(string(source))
	if len(entries) == 0 {
		logger.Error("no table rows parsed from source")
		os.Exit(1)
	}
	logger.Info("parsed source table", "entries", len(entries), "skipped", len(skips))

	totalStars := 0
	maxStars := 0
	maxName := ""
	langCounts := map[string]int{}
	for _, e := range entries {
		totalStars += e.Stars
		if e.Stars > maxStars {
			maxStars = e.Stars
			maxName = e.Name
		}
		langCounts[e.Language]++
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectorLanguages...).
		Build()
	descCounts := map[string]int{}
	for _, e := range entries {
		if e.Description == "" {
			descCounts["(empty)"]++
			continue
		}
		if lang, ok := detector.DetectLanguageOf(e.Description); ok {
			descCounts[lang.String()]++
		} else {
			descCounts["(undetected)"]++
		}
	}

	fmt.Printf("entries: %d (skipped: %d)\n", len(entries), len(skips))
	fmt.Printf("total stars: %s, most starred: %s (%s)\n",
		table.FormatStars(totalStars), maxName, table.FormatStars(maxStars))

	fmt.Println("\nrepository languages:")
	printCounts(langCounts)

	fmt.Println("\ndescription languages:")
	printCounts(descCounts)
	return nil
}

func printCounts(counts map[string]int) {
	type kv struct {
		key   string
		count int
	}
	sorted := make([]kv, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, kv{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})
	for _, e := range sorted {
		fmt.Printf("  %-20s %d\n", e.key, e.count)
	}
}
