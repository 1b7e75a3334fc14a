package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursepilot/internal/app"
	"github.com/abhisek/coursepilot/internal/ingest"
	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
	"github.com/abhisek/coursepilot/internal/store"
	"github.com/abhisek/coursepilot/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// With no course path the outline comes from the most recent stored
// session, so `coursepilot` alone resumes yesterday's course.
func runApp(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with canned tutoring content only.")
		provider = llm.NewMockProvider()
	}

	var (
		title    string
		outline  []string
		passages []string
	)
	if path != "" {
		doc, err := ingest.Load(path)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		title = doc.Title

		outline, err = ingest.DeriveOutline(ctx, provider, doc)
		if err != nil {
			return fmt.Errorf("derive outline: %w", err)
		}

		passages, err = doc.Passages()
		if err != nil {
			return fmt.Errorf("split course: %w", err)
		}
	} else {
		rec, err := st.SnapshotRepo().LoadLatest(ctx)
		if err != nil {
			return fmt.Errorf("load latest session: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no course file given and no stored sessions; run: coursepilot <course.md>")
		}
		snap, err := tutor.DecodeSnapshot(rec.Data)
		if err != nil {
			return fmt.Errorf("decode stored session: %w", err)
		}
		title = "Stored course"
		outline = snap.Outline
		passages = snap.Outline
	}
	if len(outline) == 0 {
		return fmt.Errorf("course has no topics to teach")
	}

	retriever := buildRetriever(passages)

	deps := app.Deps{
		Orchestrator: tutor.NewOrchestrator(provider, retriever),
		Manager:      tutor.NewManager(),
		CourseTitle:  title,
		Outline:      outline,
		Events:       eventRepo,
		Snapshots:    st.SnapshotRepo(),
	}
	return app.Run(deps)
}

// buildRetriever prefers a configured Pinecone index and falls back to
// the in-memory index over the course's own passages.
func buildRetriever(passages []string) retrieval.Retriever {
	if cfg, ok := retrieval.PineconeConfigFromEnv(); ok {
		idx, err := retrieval.NewPineconeIndex(cfg)
		if err == nil {
			return idx
		}
		fmt.Fprintln(os.Stderr, "Pinecone unavailable, using in-memory retrieval:", err)
	}
	return retrieval.NewMemoryIndex(passages)
}
