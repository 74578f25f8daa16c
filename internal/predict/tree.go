package predict

import (
	"encoding/json"
	"fmt"
	"os"
)

// TreeModel is a serialized decision tree. Nodes are stored in an
// array; internal nodes compare one feature against a threshold and
// branch, leaves carry the binary label. The evaluation walk follows
// the usual convention: feature value <= threshold goes left.
type TreeModel struct {
	Version int        `json:"version"`
	Nodes   []TreeNode `json:"nodes"`
}

// TreeNode is one node of the serialized tree.
type TreeNode struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Label     int     `json:"label,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

// LoadModel reads and validates a model artifact from path.
func LoadModel(path string) (*TreeModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseModel(raw)
}

// ParseModel decodes a model artifact, checking it against the JSON
// schema and the structural invariants the walker relies on.
func ParseModel(raw []byte) (*TreeModel, error) {
	if err := validateArtifact(raw); err != nil {
		return nil, err
	}

	var m TreeModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(m.Nodes) == 0 {
		return nil, fmt.Errorf("model artifact has no nodes")
	}
	for i, n := range m.Nodes {
		if n.Leaf {
			if n.Label != 0 && n.Label != 1 {
				return nil, fmt.Errorf("node %d: leaf label must be 0 or 1, got %d", i, n.Label)
			}
			continue
		}
		if n.Feature < 0 || n.Feature > 2 {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		// Children must point forward so the walk cannot cycle.
		if n.Left <= i || n.Left >= len(m.Nodes) {
			return nil, fmt.Errorf("node %d: invalid left child %d", i, n.Left)
		}
		if n.Right <= i || n.Right >= len(m.Nodes) {
			return nil, fmt.Errorf("node %d: invalid right child %d", i, n.Right)
		}
	}
	return &m, nil
}

// Predict walks the tree for the given features and returns the leaf
// label.
func (m *TreeModel) Predict(f Features) (int, error) {
	x := f.vector()
	i := 0
	for steps := 0; steps <= len(m.Nodes); steps++ {
		n := m.Nodes[i]
		if n.Leaf {
			return n.Label, nil
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}
