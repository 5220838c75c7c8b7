package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Source lists the media objects known to the repository.
type Source interface {
	MediaObjects() ([]MediaObject, error)
}

// SolrIndex reads media objects from the repository's Solr core.
type SolrIndex struct {
	selectURL string
	baseURL   string
	rows      int
	timeout   time.Duration
}

// NewSolrIndex creates a Solr-backed media object source.
func NewSolrIndex(cfg Config) *SolrIndex {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SolrIndex{
		selectURL: cfg.SolrURL,
		baseURL:   cfg.MediaObjectURL,
		rows:      cfg.Rows,
		timeout:   timeout,
	}
}

type selectResponse struct {
	Response struct {
		NumFound int       `json:"numFound"`
		Docs     []solrDoc `json:"docs"`
	} `json:"response"`
}

func (s *SolrIndex) query() string {
	params := url.Values{}
	params.Set("q", "*:*")
	params.Set("fq", `has_model_ssim:"MediaObject"`)
	params.Set("fl", "*")
	params.Set("rows", strconv.Itoa(s.rows))
	params.Set("wt", "json")
	return s.selectURL + "?" + params.Encode()
}

// MediaObjects fetches every media object document. Documents without a
// umd: identifier are kept with an empty PID.
func (s *SolrIndex) MediaObjects() ([]MediaObject, error) {
	agent := fiber.Get(s.query())
	agent.Timeout(s.timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to query search index: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("search index returned status %d", code)
	}

	var resp selectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search index response: %w", err)
	}

	objects := make([]MediaObject, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		obj, err := newMediaObject(doc, s.baseURL)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
