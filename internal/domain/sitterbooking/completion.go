package sitterbooking

import (
	"net/url"
	"strings"
	"time"
)

const (
	MaxProofURLs          = 10
	MaxCompletionNoteSize = 2000
)

type CompletionProof struct {
	note string
	urls []string
}

// NewCompletionProof requires 1..10 absolute http(s) URLs.
func NewCompletionProof(note string, urls []string) (CompletionProof, error) {
	if len(urls) == 0 {
		return CompletionProof{}, ErrProofRequired
	}
	if len(urls) > MaxProofURLs {
		return CompletionProof{}, ErrTooManyProofURLs
	}
	cleaned := make([]string, 0, len(urls))
	for _, raw := range urls {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return CompletionProof{}, ErrInvalidProofURL
		}
		cleaned = append(cleaned, u.String())
	}
	note = strings.TrimSpace(note)
	if len([]rune(note)) > MaxCompletionNoteSize {
		return CompletionProof{}, ErrNoteTooLong
	}
	return CompletionProof{note: note, urls: cleaned}, nil
}

func (p CompletionProof) Note() string   { return p.note }
func (p CompletionProof) URLs() []string { return p.urls }

// CanStartAt allows starting no earlier than grace before the scheduled start.
func CanStartAt(start, now time.Time, grace time.Duration) error {
	if now.Before(start.Add(-grace)) {
		return ErrTooEarlyToStart
	}
	return nil
}

// MinutesLate is floor((now - start) / 1m), zero when not late.
func MinutesLate(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	return int(now.Sub(start) / time.Minute)
}
