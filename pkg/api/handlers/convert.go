package handlers

import (
	"fmt"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api/types"
)

func nodeToView(n alertme.Node) types.NodeView {
	attrs := make(map[string]types.AttributeView, len(n.Attributes))
	for name, v := range n.Attributes {
		attrs[name] = types.AttributeView{
			Value:              v.String,
			IntValue:           v.Int,
			FloatValue:         v.Float,
			ReportReceivedTime: v.ReportReceivedTime,
		}
	}
	return types.NodeView{
		ID:               n.ID,
		AddrShort:        fmt.Sprintf("%02x:%02x", n.AddrShort[0], n.AddrShort[1]),
		Associated:       n.Associated,
		AssocState:       n.AssocState.String(),
		Name:             n.Name,
		CreatedOn:        n.CreatedOn,
		LastSeen:         n.LastSeen,
		MessagesReceived: n.MessagesReceived,
		MessagesSent:     n.MessagesSent,
		Attributes:       attrs,
	}
}
