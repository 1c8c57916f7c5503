package domain

// Notification is an outbound message; delivery is up to the worker.
type Notification struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
