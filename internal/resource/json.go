package resource

import (
	"encoding/json"
	"fmt"
)

// Graph is the JSON envelope the canvas collaborator exports and imports:
// the node set and nothing else.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// nodeEnvelope is the wire shape of one node. Properties stays raw until the
// type tag tells us which struct to decode it into.
type nodeEnvelope struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	Position   Position        `json:"position"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

// MarshalJSON renders the node with its concrete property struct inline.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string     `json:"id"`
		Type       Type       `json:"type"`
		Position   Position   `json:"position"`
		Properties Properties `json:"properties"`
	}{n.ID, n.Type, n.Position, n.Props})
}

// UnmarshalJSON decodes the envelope, then dispatches the properties payload
// on the type tag. Missing properties fall back to the kind's defaults.
func (n *Node) UnmarshalJSON(data []byte) error {
	var env nodeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.Type.Valid() {
		return fmt.Errorf("resource: node %q has unknown type %q", env.ID, env.Type)
	}
	props := defaultProps(env.Type, env.ID)
	if len(env.Properties) > 0 && string(env.Properties) != "null" {
		if err := json.Unmarshal(env.Properties, props); err != nil {
			return fmt.Errorf("resource: node %q properties: %w", env.ID, err)
		}
	}
	n.ID = env.ID
	n.Type = env.Type
	n.Position = env.Position
	n.Props = props
	return nil
}
