// Package archive persists scored articles to a Typesense collection. The
// archive is a best-effort sidecar: it enriches search with historical hits,
// and every failure is logged and swallowed so the serving path never depends
// on it.
package archive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"

	"github.com/pulsefeed/pulsefeed/internal/config"
	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

type Archive struct {
	client     *typesense.Client
	collection string
	log        *logging.Logger
}

// New builds the archive client. With no API key configured it returns an
// unavailable archive; all methods nil-guard on that.
func New(cfg *config.Config, log *logging.Logger) *Archive {
	a := &Archive{collection: cfg.TypesenseCollection, log: log}
	if cfg.TypesenseAPIKey == "" {
		return a
	}
	a.client = typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort)),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)
	return a
}

func (a *Archive) Available() bool {
	return a != nil && a.client != nil
}

// EnsureCollection creates the article collection if it does not exist yet.
func (a *Archive) EnsureCollection(ctx context.Context) error {
	if !a.Available() {
		return nil
	}
	if _, err := a.client.Collection(a.collection).Retrieve(ctx); err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: a.collection,
		Fields: []api.Field{
			{Name: "title", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "link", Type: "string"},
			{Name: "source", Type: "string", Facet: boolPtr(true)},
			{Name: "ai_score", Type: "int32"},
			{Name: "ai_summary", Type: "string"},
			{Name: "ai_category", Type: "string", Facet: boolPtr(true)},
			{Name: "sentiment", Type: "string", Facet: boolPtr(true)},
			{Name: "published_unix", Type: "int64"},
		},
		DefaultSortingField: strPtr("ai_score"),
	}
	if _, err := a.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("create collection %s: %w", a.collection, err)
	}
	a.log.Infof("archive collection %s created", a.collection)
	return nil
}

type document struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	Source        string `json:"source"`
	AIScore       int    `json:"ai_score"`
	AISummary     string `json:"ai_summary"`
	AICategory    string `json:"ai_category"`
	Sentiment     string `json:"sentiment"`
	PublishedUnix int64  `json:"published_unix"`
}

// Upsert writes scored articles into the collection, keyed by link so the
// same article archived twice stays one document.
func (a *Archive) Upsert(ctx context.Context, articles []models.Article) {
	if !a.Available() {
		return
	}
	for _, art := range articles {
		if art.Status != models.ScoreStatusScored {
			continue
		}
		doc := document{
			ID:          docID(art.Link),
			Title:       art.Title,
			Description: art.Description,
			Link:        art.Link,
			Source:      art.Source,
			AIScore:     art.AIScore,
			AISummary:   art.AISummary,
			AICategory:  art.AICategory,
			Sentiment:   art.Sentiment,
		}
		if art.PublishedAt != nil {
			doc.PublishedUnix = art.PublishedAt.Unix()
		}
		if _, err := a.client.Collection(a.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
			a.log.Warnf("archive upsert failed for %s: %v", art.Link, err)
		}
	}
}

// SearchTitles queries the archive by title and description text. Returned
// articles are already scored; callers merge them behind fresher results.
func (a *Archive) SearchTitles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	if !a.Available() {
		return nil, nil
	}

	params := &api.SearchCollectionParams{
		Q:       strPtr(query),
		QueryBy: strPtr("title,description"),
		PerPage: &limit,
		SortBy:  strPtr("_text_match:desc,ai_score:desc"),
	}
	result, err := a.client.Collection(a.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("archive search: %w", err)
	}
	if result.Hits == nil {
		return nil, nil
	}

	articles := make([]models.Article, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		raw, err := json.Marshal(*hit.Document)
		if err != nil {
			continue
		}
		var doc document
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		art := models.Article{
			Title:       doc.Title,
			Description: doc.Description,
			Link:        doc.Link,
			Source:      doc.Source,
			AIScore:     doc.AIScore,
			AISummary:   doc.AISummary,
			AICategory:  doc.AICategory,
			Sentiment:   doc.Sentiment,
			Status:      models.ScoreStatusScored,
		}
		if doc.PublishedUnix > 0 {
			t := time.Unix(doc.PublishedUnix, 0).UTC()
			art.PublishedAt = &t
		}
		articles = append(articles, art)
	}
	return articles, nil
}

func docID(link string) string {
	sum := sha256.Sum256([]byte(link))
	return hex.EncodeToString(sum[:])
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
