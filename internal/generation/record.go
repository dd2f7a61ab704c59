package generation

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yash-Yashwant/CosplayAI/internal/photo"
)

// Status enumerates a generation's lifecycle states.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Record is the transient bookkeeping entry for one transformation
// request. It lives only for the hosting process's lifetime.
type Record struct {
	ID            string            `json:"id"`
	Status        Status            `json:"status"`
	Character     string            `json:"character"`
	Style         string            `json:"style"`
	Quality       string            `json:"quality"`
	CreatedAt     time.Time         `json:"created_at"`
	EstimatedTime int               `json:"estimated_time"`
	Prompt        string            `json:"prompt"`
	ResultURL     string            `json:"result_url,omitempty"`
	Error         string            `json:"error,omitempty"`
	Analysis      *photo.Analysis   `json:"analysis,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// NewID returns an opaque unique generation token.
func NewID() string {
	return uuid.NewString()
}
