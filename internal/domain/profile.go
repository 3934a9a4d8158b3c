package domain

import (
	"sync"
	"time"
)

// Span times one pipeline stage
type Span struct {
	Name    string    `json:"name"`
	Elapsed *int64    `json:"elapsedMs"`
	startTs time.Time `json:"-"`
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// Profile is an ordered list of stage spans for one run
type Profile struct {
	mu      sync.Mutex
	Spans   []*Span   `json:"spans"`
	TotalMs *int64    `json:"totalMs"`
	startTs time.Time `json:"-"`
}

func NewProfile() (*Profile, func()) {
	p := &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return p, p.End
}

// StartNewSpan ends the open span, if any, and begins the next one
func (p *Profile) StartNewSpan(name string) (*Span, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	s := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	p.Spans = append(p.Spans, s)
	return s, s.End
}

func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}
