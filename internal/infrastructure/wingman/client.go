package wingman

import (
	"context"
	"fmt"
	"strings"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates a short compatibility note for a freshly matched
// pair of signs. It is strictly optional: the swipe flow works the
// same with a nil client or an unreachable API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)

	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// MatchNote asks the model for a one-sentence note on why the two
// signs go well together. Falls back to a canned line when the API is
// unavailable so a match never fails because of it.
func (c *Client) MatchNote(ctx context.Context, a, b domain.ZodiacSign) (string, error) {
	prompt := fmt.Sprintf(
		"Two people just matched on a zodiac dating app. One is %s, the other is %s. "+
			"Write one short, warm sentence (German) about why these signs go well together. "+
			"Output just the sentence.",
		a.Name, b.Name,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fallbackNote(a, b), nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackNote(a, b), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	note := strings.TrimSpace(sb.String())
	if note == "" {
		return fallbackNote(a, b), nil
	}
	return note, nil
}

func fallbackNote(a, b domain.ZodiacSign) string {
	return fmt.Sprintf("%s und %s, die Sterne stehen gut für euch!", a.Name, b.Name)
}
