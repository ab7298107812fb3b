package esign

// EventContractSigned is the only webhook event type we act on; everything
// else is acknowledged and ignored.
const EventContractSigned = "contract-signed"

// WebhookPayload is the body esignatures.com POSTs to our webhook endpoint.
type WebhookPayload struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

type WebhookData struct {
	Contract *WebhookContract `json:"contract"`
}

type WebhookContract struct {
	ID             string `json:"id"`
	ContractPDFURL string `json:"contract_pdf_url"`
}
