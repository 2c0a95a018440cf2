package data

import (
	_ "embed"
)

// ExecutiveOrders is the collection shipped with the binary.
//
//go:embed executive-orders.json
var ExecutiveOrders []byte
