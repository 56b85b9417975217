package entities

// SupplierEmail is the restock request addressed to one supplier of a session.
//
// It is derived from the session snapshot when emails are generated and is
// not persisted on its own: regenerating from the same snapshot yields the
// same emails. MessageID is set once the email has been sent.
type SupplierEmail struct {
	SessionID    string        `json:"session_id"`
	SupplierID   string        `json:"supplier_id"`
	SupplierName string        `json:"supplier_name"`
	To           string        `json:"to"`
	Subject      string        `json:"subject"`
	Body         string        `json:"body"`
	Items        []SessionItem `json:"items"`
	MessageID    string        `json:"message_id,omitempty"`
}
