package vision

import (
	"context"

	"google.golang.org/genai"
)

const SYSTEM_INSTRUCTION = `
You are an expert virtual tour guide. When shown an image of a monument, your task is to:
1. Recognize the monument from the image.
2. Return the name of the monument in the format: "Monument Name: <name>".
3. Provide a detailed description of the monument after the name in the format: "Description: <detailed description>".
Make sure to return the name and description in separate lines.
`

// Input is the payload of one identification request: either an image or
// a text query, never both.
type Input struct {
	Text      string
	ImageData []byte
	ImageMIME string
}

// Client wraps the Gemini API for monument identification requests.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: cl, model: model}, nil
}

// Generate sends the tour-guide prompt with the image or text payload and
// returns the model's raw text reply.
func (c *Client) Generate(ctx context.Context, in Input) (string, error) {
	var contents []*genai.Content
	if len(in.ImageData) > 0 {
		contents = []*genai.Content{{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: in.ImageMIME, Data: in.ImageData}},
		}}}
	} else {
		contents = genai.Text(in.Text)
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		contents,
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
