package model

// InputFile is one uploaded binary blob, already read off the wire.
type InputFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

// GenerationRequest carries everything a single generation call needs.
// BrowseSession identifies the interactive session whose continuation
// state the tracker consults; it is independent of the provider-issued
// continuation token.
type GenerationRequest struct {
	Operation     Operation
	Prompt        string
	Files         []InputFile
	Model         string
	AspectRatio   string
	Resolution    string
	Voice         string
	VideoID       string
	IsNew         bool
	BrowseSession string
}

type PromptCreateRequest struct {
	Content string `json:"content" binding:"required"`
}

type PromptUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}
