package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/lymphwatch/internal/llm"
)

// Service generates post-assessment advice asynchronously.
// A nil provider disables generation; callers fall back to the static
// per-class guidance text.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Advice
	err     error
	ready   bool
}

// NewService creates an advice generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether an LLM provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// RequestAdvice starts async advice generation. Only one request is
// in-flight at a time, new requests replace pending results.
func (s *Service) RequestAdvice(ctx context.Context, input Input) {
	if !s.Available() {
		return
	}
	go func() {
		adv, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = adv
		s.err = err
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice if one is ready.
// Returns (nil, false) if nothing is ready yet. If generation failed,
// returns (nil, true) so callers can stop waiting and fall back.
func (s *Service) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	adv := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return adv, true
}

type adviceOutput struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	SeeClinician    bool     `json:"see_clinician"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "advice")

	req := llm.Request{
		System:      adviceSystemPrompt,
		Prompt:      buildAdviceUserMessage(input),
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	if out.Summary == "" || len(out.Recommendations) == 0 {
		return nil, fmt.Errorf("advice response missing required fields")
	}

	return &Advice{
		Summary:         out.Summary,
		Recommendations: out.Recommendations,
		SeeClinician:    out.SeeClinician,
	}, nil
}
