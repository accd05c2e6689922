package service

import (
	"bytes"
	"context"
	"net/url"

	"github.com/arbovm/levenshtein"

	"go-qr-score/internal/qrerrors"
	"go-qr-score/internal/render"
	"go-qr-score/internal/scoring"
	"go-qr-score/internal/storage"
)

// ScoreRequest describes one scoring job.
type ScoreRequest struct {
	URL             string
	ExpectedContent string
	RenderSize      int // 0 means the service default
}

// Verification compares the decoded payload against caller-expected content.
type Verification struct {
	Expected string `json:"expected"`
	Match    bool   `json:"match"`
	Distance int    `json:"distance"`
}

// ScoreResponse is the externally visible scoring payload.
type ScoreResponse struct {
	Score           int             `json:"score"`
	Grade           string          `json:"grade"`
	Decodable       bool            `json:"decodable"`
	Content         string          `json:"content,omitempty"`
	ErrorCorrection string          `json:"error_correction,omitempty"`
	Results         map[string]bool `json:"results"`
	ContrastRatio   int             `json:"contrast_ratio"`
	Verification    *Verification   `json:"verification,omitempty"`
}

// ScoringService scores QR documents fetched by URL or supplied as bytes.
type ScoringService interface {
	ScoreURL(ctx context.Context, req ScoreRequest) (*ScoreResponse, error)
	ScoreBytes(ctx context.Context, data []byte, req ScoreRequest) (*ScoreResponse, error)
	ValidateURL(rawURL string) error
}

type scoringService struct {
	fetcher  storage.ByteFetcher
	defaults scoring.Params
}

// NewScoringService creates a scoring service. defaults supplies the scoring
// parameters used when a request does not override them.
func NewScoringService(fetcher storage.ByteFetcher, defaults scoring.Params) ScoringService {
	return &scoringService{fetcher: fetcher, defaults: defaults}
}

func (s *scoringService) ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if parsed.Host == "" {
		return qrerrors.NewImageLoad(nil)
	}
	return nil
}

func (s *scoringService) ScoreURL(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	data, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	return s.ScoreBytes(ctx, data, req)
}

func (s *scoringService) ScoreBytes(_ context.Context, data []byte, req ScoreRequest) (*ScoreResponse, error) {
	params := s.defaults
	if req.RenderSize > 0 {
		params.RenderSize = req.RenderSize
	}

	var result *scoring.ValidationResult
	var err error
	if LooksLikeSVG(data) {
		result, err = render.ScoreSVG(data, params)
	} else {
		result, err = scoring.Validate(data, params)
	}
	if err != nil {
		return nil, err
	}

	resp := &ScoreResponse{
		Score:         result.Score,
		Grade:         scoring.GradeFromScore(result.Score),
		Decodable:     result.Decodable,
		Content:       result.Content,
		Results:       result.StressResults.Tests,
		ContrastRatio: contrastPercent(result.StressResults.ContrastRatio),
	}
	if result.Metadata != nil {
		resp.ErrorCorrection = string(result.Metadata.ErrorCorrection)
	}
	if req.ExpectedContent != "" {
		distance := levenshtein.Distance(req.ExpectedContent, result.Content)
		resp.Verification = &Verification{
			Expected: req.ExpectedContent,
			Match:    distance == 0,
			Distance: distance,
		}
	}
	return resp, nil
}

// LooksLikeSVG sniffs document bytes for a vector document marker.
func LooksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg")) || bytes.HasPrefix(bytes.TrimSpace(head), []byte("<?xml"))
}

func contrastPercent(ratio float64) int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(ratio*100 + 0.5)
}
