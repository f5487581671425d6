package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Categories the model is asked to choose from.
var Categories = []string{
	"Necklaces", "Earrings", "Bangles", "Rings", "Bracelets",
	"Anklets", "Maang Tikka", "Nose Ring", "Chains", "Sets",
}

var ErrNoJSON = errors.New("no JSON object in model response")

// Analyzer describes a product from a photo of it.
type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) (Analysis, error)
}

type Analysis struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Gender         string   `json:"gender"`
	EstimatedPrice Price    `json:"estimatedPrice"`
	Size           string   `json:"size"`
	Features       []string `json:"features"`
}

// Price accepts a JSON number or a numeric string such as "₹1,500".
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("estimatedPrice: %w", err)
	}
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		*p = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("estimatedPrice: %w", err)
	}
	*p = Price(n)
	return nil
}

// ParseAnalysis decodes the first JSON object in a model response, ignoring
// any prose or code fences around it.
func ParseAnalysis(text string) (Analysis, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return Analysis{}, ErrNoJSON
	}

	var a Analysis
	if err := json.NewDecoder(strings.NewReader(text[start:])).Decode(&a); err != nil {
		return Analysis{}, fmt.Errorf("decode model response: %w", err)
	}
	return a, nil
}
