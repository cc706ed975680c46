package dto

// AppendResponse is the explicit synchronous ack returned by the ledger
// endpoint: a direct 200 with a body confirming the write, instead of
// the redirect-as-success convention of spreadsheet script hosts.
type AppendResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}
