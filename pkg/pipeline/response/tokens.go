package response

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter measures text against the model's tokenizer, falling back to
// a rough four-characters-per-token estimate when no encoding is available.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func NewTokenCounter(model string) *TokenCounter {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			enc = nil
		}
	}
	return &TokenCounter{encoding: enc}
}

func (c *TokenCounter) Count(text string) int {
	if c.encoding == nil {
		return (len(text) + 3) / 4
	}
	return len(c.encoding.Encode(text, nil, nil))
}
