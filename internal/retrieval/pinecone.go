package retrieval

import (
	"context"
	"fmt"
	"os"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/protobuf/types/known/structpb"
)

// PineconeConfig holds the connection settings for the hosted knowledge base.
type PineconeConfig struct {
	APIKey    string
	IndexName string
	Namespace string

	// EmbedAPIKey is the OpenAI key used for query/passage embeddings.
	EmbedAPIKey string
	// EmbedModel is the chat model backing the embedder. Default: gpt-4o-mini.
	EmbedModel string
}

// PineconeConfigFromEnv reads the Pinecone settings from the environment.
// Returns false when no Pinecone key is configured.
func PineconeConfigFromEnv() (PineconeConfig, bool) {
	cfg := PineconeConfig{
		APIKey:      os.Getenv("PINECONE_API_KEY"),
		IndexName:   "coursepilot-docs-index",
		Namespace:   "coursepilot-docs",
		EmbedAPIKey: os.Getenv("OPENAI_API_KEY"),
		EmbedModel:  "gpt-4o-mini",
	}
	if v := os.Getenv("COURSEPILOT_PINECONE_INDEX"); v != "" {
		cfg.IndexName = v
	}
	if v := os.Getenv("COURSEPILOT_PINECONE_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	return cfg, cfg.APIKey != "" && cfg.EmbedAPIKey != ""
}

// PineconeIndex is a Retriever backed by a Pinecone vector index.
type PineconeIndex struct {
	client   *pinecone.Client
	embedder embeddings.Embedder
	cfg      PineconeConfig
}

var _ Retriever = (*PineconeIndex)(nil)

// NewPineconeIndex connects to Pinecone and prepares the embedder.
func NewPineconeIndex(cfg PineconeConfig) (*PineconeIndex, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone API key is required")
	}

	pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create pinecone client: %w", err)
	}

	llm, err := openai.New(
		openai.WithModel(cfg.EmbedModel),
		openai.WithToken(cfg.EmbedAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	return &PineconeIndex{client: pc, embedder: embedder, cfg: cfg}, nil
}

// Retrieve embeds the query and returns the k nearest passages.
func (p *PineconeIndex) Retrieve(ctx context.Context, query string, k int) ([]Passage, error) {
	if k <= 0 {
		return nil, nil
	}

	conn, err := p.connect(ctx)
	if err != nil {
		return nil, &ErrRetrieval{Query: query, Err: err}
	}

	vecs, err := p.embedder.EmbedDocuments(ctx, []string{query})
	if err != nil {
		return nil, &ErrRetrieval{Query: query, Err: fmt.Errorf("embed query: %w", err)}
	}

	result, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vecs[0],
		TopK:            uint32(k),
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, &ErrRetrieval{Query: query, Err: fmt.Errorf("query vectors: %w", err)}
	}

	var out []Passage
	for _, match := range result.Matches {
		if match.Vector == nil || match.Vector.Metadata == nil {
			continue
		}
		meta := match.Vector.Metadata.AsMap()
		content, _ := meta["content"].(string)
		if content == "" {
			continue
		}
		out = append(out, Passage{Content: content, Score: match.Score})
	}
	return out, nil
}

// Upsert indexes the given passages, embedding each and storing the text
// as metadata. IDs are derived from docID and the passage position.
func (p *PineconeIndex) Upsert(ctx context.Context, docID string, passages []string) (int, error) {
	if len(passages) == 0 {
		return 0, nil
	}

	conn, err := p.connect(ctx)
	if err != nil {
		return 0, err
	}

	vecs, err := p.embedder.EmbedDocuments(ctx, passages)
	if err != nil {
		return 0, fmt.Errorf("embed passages: %w", err)
	}

	vectors := make([]*pinecone.Vector, 0, len(passages))
	for i, text := range passages {
		meta, err := structpb.NewStruct(map[string]any{
			"doc_id":  docID,
			"ordinal": i,
			"content": text,
		})
		if err != nil {
			return 0, fmt.Errorf("build metadata for passage %d: %w", i, err)
		}
		vectors = append(vectors, &pinecone.Vector{
			Id:       fmt.Sprintf("%s_chunk_%d", docID, i),
			Values:   &vecs[i],
			Metadata: meta,
		})
	}

	const batchSize = 32
	total := 0
	for i := 0; i < len(vectors); i += batchSize {
		end := min(i+batchSize, len(vectors))
		count, err := conn.UpsertVectors(ctx, vectors[i:end])
		if err != nil {
			return total, fmt.Errorf("upsert batch at %d: %w", i, err)
		}
		total += int(count)
	}
	return total, nil
}

func (p *PineconeIndex) connect(ctx context.Context) (*pinecone.IndexConnection, error) {
	desc, err := p.client.DescribeIndex(ctx, p.cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("describe index %q: %w", p.cfg.IndexName, err)
	}
	conn, err := p.client.Index(pinecone.NewIndexConnParams{
		Host:      desc.Host,
		Namespace: p.cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to index %q: %w", p.cfg.IndexName, err)
	}
	return conn, nil
}
