package dto

type OrderSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderErrorResponse struct {
	Error string `json:"error"`
}

const (
	MessageOrderSubmitted = "Order submitted successfully"
	MessageLedgerPending  = "Order logged (ledger pending setup)"
	MessageSubmitFailed   = "Failed to submit order. Please try again."
)
