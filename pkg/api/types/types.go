// Package types holds the JSON request/response DTOs for pkg/api.
package types

import "time"

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	NodeCount int       `json:"node_count"`
	Timestamp time.Time `json:"timestamp"`
}

// AttributeView is one reported attribute value with its timestamp.
type AttributeView struct {
	Value              string  `json:"value,omitempty"`
	IntValue           int64   `json:"int_value,omitempty"`
	FloatValue         float64 `json:"float_value,omitempty"`
	ReportReceivedTime int64   `json:"report_received_time"`
}

// NodeView is the JSON projection of alertme.Node.
type NodeView struct {
	ID               string                   `json:"id"`
	AddrShort        string                   `json:"addr_short"`
	Associated       bool                     `json:"associated"`
	AssocState       string                   `json:"assoc_state"`
	Name             string                   `json:"name"`
	CreatedOn        int64                    `json:"created_on"`
	LastSeen         int64                    `json:"last_seen"`
	MessagesReceived uint64                   `json:"messages_received"`
	MessagesSent     uint64                   `json:"messages_sent"`
	Attributes       map[string]AttributeView `json:"attributes"`
}

// ListNodesResponse is returned from GET /api/v1/nodes.
type ListNodesResponse struct {
	Nodes []NodeView `json:"nodes"`
	Count int        `json:"count"`
}

// NodeResponse is returned from GET /api/v1/nodes/:id.
type NodeResponse struct {
	Node NodeView `json:"node"`
}

// StartDiscoveryResponse is returned from POST /api/v1/discovery/start.
type StartDiscoveryResponse struct {
	Status string `json:"status"`
}

// DiscoveryStatusResponse is returned from GET /api/v1/discovery/status.
type DiscoveryStatusResponse struct {
	Running bool `json:"running"`
}
