// Package llm abstracts the external text-generation service so prompt
// construction can be tested without network I/O.
package llm

import (
	"context"
	"errors"
)

// Client is the capability the letter generator depends on: one prompt in,
// one generated text out.
type Client interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// CompletionInput carries a single chat-style completion request.
type CompletionInput struct {
	System      string
	User        string
	Temperature float32
}

// ErrNotConfigured is returned by Unconfigured when no service credential
// is available.
var ErrNotConfigured = errors.New("llm client not configured")

// Unconfigured stands in for a real client when no API key is set; every
// call fails without touching the network.
type Unconfigured struct{}

// Complete returns ErrNotConfigured.
func (Unconfigured) Complete(ctx context.Context, input CompletionInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

var _ Client = Unconfigured{}
