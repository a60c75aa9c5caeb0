package types

import "github.com/go-playground/validator/v10"

// MaxUserInfoLength is the maximum accepted length of raw career text at the
// API boundary. Longer inputs are rejected before reaching the crew.
const MaxUserInfoLength = 50000

// MaxBatchSize is the maximum number of items accepted by the batch endpoint.
const MaxBatchSize = 10

// GenerateRequest represents the request body for POST /generate.
type GenerateRequest struct {
	UserInfo   string `json:"user_info" validate:"required,min=1,max=50000"`
	TargetRole string `json:"target_role,omitempty" validate:"max=200"`
}

// GenerateResponse represents the response for POST /generate.
type GenerateResponse struct {
	RequestID string `json:"request_id"`
	Resume    string `json:"resume"`
	Source    string `json:"source"` // "crew" or "fallback"

	FallbackReason  string   `json:"fallback_reason,omitempty"`
	MissingSections []string `json:"missing_sections,omitempty"`
}

// BatchGenerateRequest represents the request body for POST /generate/batch.
type BatchGenerateRequest struct {
	Items []GenerateRequest `json:"items" validate:"required,min=1,max=10,dive"`
}

// BatchGenerateResponse represents the response for POST /generate/batch.
// Results keep the order of the request items.
type BatchGenerateResponse struct {
	RequestID string             `json:"request_id"`
	Results   []GenerateResponse `json:"results"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchGenerateRequest using the validator.
func (r *BatchGenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
