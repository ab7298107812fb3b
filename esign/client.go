package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://esignatures.com"

var (
	// ErrNotConfigured means the API token or template id is missing. This is
	// an operator problem and must be distinguishable from provider rejections.
	ErrNotConfigured = errors.New("esignatures api token or template id is not configured")
	// ErrRejected means the provider refused the create-contract request.
	ErrRejected = errors.New("esignatures rejected the contract request")
	// ErrMissingContractID means the provider answered OK but without a
	// contract id we can track the agreement by.
	ErrMissingContractID = errors.New("esignatures response contained no contract id")
)

// Contract is the provider-side agreement we track a rental against.
type Contract struct {
	ID string
}

// CreateContractRequest carries everything needed to instantiate the rental
// agreement template for one signer.
type CreateContractRequest struct {
	Title        string
	Metadata     string // opaque; we store the rental id here
	SignerName   string
	SignerEmail  string
	Placeholders []Placeholder
}

// Placeholder fills a template field by its api key.
type Placeholder struct {
	APIKey string `json:"api_key"`
	Value  string `json:"value"`
}

// Service creates e-signature contracts.
type Service interface {
	CreateContract(ctx context.Context, req CreateContractRequest) (*Contract, error)
}

type client struct {
	apiToken   string
	templateID string
	testMode   bool
	baseURL    string
	http       *http.Client
}

// NewClient constructs a Service against esignatures.com. An empty token or
// template id is allowed at construction; CreateContract reports
// ErrNotConfigured when called.
func NewClient(apiToken, templateID string, testMode bool) Service {
	return &client{
		apiToken:   apiToken,
		templateID: templateID,
		testMode:   testMode,
		baseURL:    defaultBaseURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

type signer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createContractBody struct {
	TemplateID        string        `json:"template_id"`
	Title             string        `json:"title"`
	Metadata          string        `json:"metadata"`
	Test              string        `json:"test"`
	Signers           []signer      `json:"signers"`
	PlaceholderFields []Placeholder `json:"placeholder_fields"`
}

type createContractResponse struct {
	Data struct {
		Contract struct {
			ID string `json:"id"`
		} `json:"contract"`
	} `json:"data"`
	ErrorMessage string `json:"error_message"`
}

func (c *client) CreateContract(ctx context.Context, req CreateContractRequest) (*Contract, error) {
	if c.apiToken == "" || c.templateID == "" {
		return nil, ErrNotConfigured
	}

	testFlag := "no"
	if c.testMode {
		testFlag = "yes"
	}
	body := createContractBody{
		TemplateID:        c.templateID,
		Title:             req.Title,
		Metadata:          req.Metadata,
		Test:              testFlag,
		Signers:           []signer{{Name: req.SignerName, Email: req.SignerEmail}},
		PlaceholderFields: req.Placeholders,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/contracts?token=%s", c.baseURL, c.apiToken)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("esignatures request failed: %w", err)
	}
	defer resp.Body.Close()

	var out createContractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("decode esignatures response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.ErrorMessage != "" {
			return nil, fmt.Errorf("%w: %s", ErrRejected, out.ErrorMessage)
		}
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	if out.Data.Contract.ID == "" {
		return nil, ErrMissingContractID
	}
	return &Contract{ID: out.Data.Contract.ID}, nil
}
