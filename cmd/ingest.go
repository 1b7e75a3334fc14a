package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursepilot/internal/ingest"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <course.md>",
	Short: "Index a course document into Pinecone for retrieval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, ok := retrieval.PineconeConfigFromEnv()
		if !ok {
			return fmt.Errorf("pinecone is not configured; set PINECONE_API_KEY and PINECONE_INDEX")
		}
		idx, err := retrieval.NewPineconeIndex(cfg)
		if err != nil {
			return fmt.Errorf("connect to pinecone: %w", err)
		}

		doc, err := ingest.Load(args[0])
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		passages, err := doc.Passages()
		if err != nil {
			return fmt.Errorf("split course: %w", err)
		}

		n, err := idx.Upsert(ctx, doc.Title, passages)
		if err != nil {
			return fmt.Errorf("upsert passages: %w", err)
		}

		fmt.Printf("Indexed %q: %d passage(s)\n", doc.Title, n)
		return nil
	},
}
