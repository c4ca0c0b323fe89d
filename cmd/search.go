package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/ollama"
	"github.com/pders01/mnemos/internal/search"
)

var (
	searchType     string
	searchDays     int
	searchSemantic bool
	searchLimit    int
	searchJSON     bool
	searchToon     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search memory by keyword, optionally ranked semantically",
	Long: `Search both memory documents for a keyword (case-insensitive).

Each hit is reported with the heading it falls under: the long-term section
or the short-term date. --days keeps only short-term hits from the last N
days.

With --semantic and embeddings enabled in config, memory fragments are also
ranked by similarity to the keyword using a local Ollama model. When Ollama
is not reachable the search falls back to keywords only.

Examples:
  mnemos search cache
  mnemos search parser --type short --days 3
  mnemos search "error handling" --semantic --limit 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchType, "type", "t", "all", "Memory type: all|long|short")
	searchCmd.Flags().IntVar(&searchDays, "days", -1, "Only short-term hits from the last N days (0 = today)")
	searchCmd.Flags().BoolVar(&searchSemantic, "semantic", false, "Also rank memory fragments by embedding similarity")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum semantic results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	searchCmd.Flags().BoolVar(&searchToon, "toon", false, "Output in LLM-friendly toon format")
}

type searchOutput struct {
	*search.Results
	Semantic []search.Hit `json:"semantic,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	scope, err := search.ParseScope(searchType)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	searcher := search.NewSearcher(store)

	q := search.Query{Keyword: args[0], Scope: scope}
	if searchDays >= 0 {
		q.Days = &searchDays
	}
	res, err := searcher.Search(q)
	if err != nil {
		return err
	}

	out := searchOutput{Results: res}
	if searchSemantic {
		ctx := commandContext(cmd)
		if client := embeddingClient(store.Config()); client != nil && client.Ping(ctx) == nil {
			hits, err := searcher.Semantic(ctx, client, args[0], scope, searchLimit)
			if err != nil {
				logOf("search").Warn("semantic search failed, using keywords only", "error", err)
			}
			out.Semantic = hits
		} else {
			logOf("search").Warn("embeddings unavailable, using keywords only")
		}
	}

	w := output(cmd)
	if done, err := printStructured(w, out, searchJSON, searchToon); done {
		return err
	}

	fmt.Fprintln(w, res.Text())
	printSemantic(w, out.Semantic)
	return nil
}

// embeddingClient returns nil when embeddings are disabled or misconfigured
func embeddingClient(cfg *config.Config) *ollama.Client {
	if !cfg.Embeddings.Enabled {
		return nil
	}
	client, err := ollama.NewClient(cfg.Embeddings.OllamaURL, cfg.Embeddings.Model)
	if err != nil {
		logOf("search").Warn("invalid embeddings config", "error", err)
		return nil
	}
	return client
}

func printSemantic(w io.Writer, hits []search.Hit) {
	if len(hits) == 0 {
		return
	}
	fmt.Fprintln(w, "\n=== Semantic matches ===")
	for i, h := range hits {
		fmt.Fprintf(w, "%d. [%s] %s (score: %.2f)\n", i+1, h.Source, h.Header, h.Score)
	}
}
