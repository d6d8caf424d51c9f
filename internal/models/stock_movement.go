package models

// Stock movement operation names used in published events.
const (
	OperationPurchase = "purchase"
	OperationRestock  = "restock"
)

// StockMovement is the event published for every stock-changing operation.
type StockMovement struct {
	MovementID string `json:"movement_id"` // Unique event identifier
	SweetID    string `json:"sweet_id"`    // Affected sweet
	Operation  string `json:"operation"`   // purchase or restock
	Delta      int    `json:"delta"`       // Signed quantity change
	Quantity   int    `json:"quantity"`    // Quantity after the change
	Username   string `json:"username"`    // Acting principal
	Timestamp  int64  `json:"timestamp"`   // Unix seconds
}
