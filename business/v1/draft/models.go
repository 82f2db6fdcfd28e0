package draft

import "errors"

// Draft is the generated expansion of a title plus rough notes.
type Draft struct {
	Title   string `json:"title" example:"A Day Worth Writing Down"`
	Content string `json:"content" example:"## Morning\n\nIt started with..."`
}

// Request is the generation request body. Context carries whatever the user
// has already typed, possibly empty.
type Request struct {
	Title   string `json:"title"`
	Context string `json:"context"`
}

// ErrInFlight reports that a generation is already pending; the assistant
// accepts one request at a time.
var ErrInFlight = errors.New("a draft generation is already in progress")

type generateRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g generateResponse) text() string {
	if len(g.Candidates) == 0 || len(g.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return g.Candidates[0].Content.Parts[0].Text
}
