package printagent

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// JobType identifies the kind of print job sent to an edge agent.
type JobType string

const (
	JobBill       JobType = "BILL"
	JobInvoice    JobType = "INVOICE"
	JobOpenDrawer JobType = "OPEN_DRAWER"
	JobKOT        JobType = "KOT"
)

// Job is the descriptor POSTed to a printer agent's webhook.
type Job struct {
	Type    JobType                `json:"type"`
	URL     string                 `json:"-"`
	Payload map[string]interface{} `json:"-"`
}

// MarshalJSON flattens the payload next to the type field.
func (j Job) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(j.Payload)+1)
	for k, v := range j.Payload {
		out[k] = v
	}
	out["type"] = string(j.Type)
	return json.Marshal(out)
}

// Client posts print jobs to local/edge print agents. Printing is advisory:
// failures are logged and swallowed, never surfaced to the POS transaction.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client posting to edge agents with the given
// timeout. Zero falls back to 3 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts the job to the agent URL. Errors are swallowed.
func (c *Client) Send(ctx context.Context, job Job) {
	if job.URL == "" {
		return
	}
	body, err := json.Marshal(job)
	if err != nil {
		log.Printf("printagent: marshal %s job: %v", job.Type, err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, job.URL, bytes.NewReader(body))
	if err != nil {
		log.Printf("printagent: build %s request: %v", job.Type, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// agent might be offline, the POS flow must not crash
		log.Printf("printagent: %s to %s: %v", job.Type, job.URL, err)
		return
	}
	resp.Body.Close()
}
