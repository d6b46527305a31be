package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

// CandidateIndexer maintains a semantic index over completed candidates so
// recruiters can search transcripts by meaning rather than exact substrings.
type CandidateIndexer interface {
	InitCollection() error
	IndexCandidate(ctx context.Context, candidate models.Candidate) error
	Search(ctx context.Context, query string, limit int) ([]IndexHit, error)
}

type IndexHit struct {
	SessionID string
	Score     float32
}

type qdrantIndexer struct {
	client         *qdrant.Client
	gen            Generator
	collectionName string
	vectorSize     uint64
}

func NewQdrantIndexer(urlStr, apiKey, collectionName string, gen Generator) (CandidateIndexer, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port by default
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndexer{
		client:         client,
		gen:            gen,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements CandidateIndexer.
func (q *qdrantIndexer) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// IndexCandidate implements CandidateIndexer. The session ID doubles as the
// point ID, so re-indexing the same candidate overwrites rather than
// duplicates.
func (q *qdrantIndexer) IndexCandidate(ctx context.Context, candidate models.Candidate) error {
	text := indexText(candidate)

	embedding, err := q.gen.EmbedText(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed candidate transcript: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(candidate.SessionID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"session_id": candidate.SessionID,
			"name":       candidate.Name,
			"email":      candidate.Email,
		}),
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// Search implements CandidateIndexer.
func (q *qdrantIndexer) Search(ctx context.Context, query string, limit int) ([]IndexHit, error) {
	embedding, err := q.gen.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var hits []IndexHit
	for _, point := range points {
		hit := IndexHit{Score: point.Score}
		if sessionID, ok := point.Payload["session_id"]; ok {
			if val, ok := sessionID.GetKind().(*qdrant.Value_StringValue); ok {
				hit.SessionID = val.StringValue
			}
		}
		if hit.SessionID != "" {
			hits = append(hits, hit)
		}
	}

	return hits, nil
}

func indexText(candidate models.Candidate) string {
	var b strings.Builder
	b.WriteString(candidate.Summary)
	b.WriteString("\n\n")
	for i, question := range candidate.Questions {
		if i >= len(candidate.Answers) {
			break
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", question.Question, candidate.Answers[i])
	}
	return b.String()
}
