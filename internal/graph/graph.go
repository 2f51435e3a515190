// Package graph turns a resolver edge map into a typed node/edge graph
// used for reporting and visualization.
package graph

import (
	"fmt"

	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/formula"
)

// NodeKind discriminates graph node types.
type NodeKind int

// Node kinds.
const (
	NodeRecipe NodeKind = iota
	NodeMiner
	NodeInput
	NodeProduct
	NodeByproduct
	NodeSink
)

// ItemAmount is an item flow quantity attached to a node or edge.
type ItemAmount struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// Node is one vertex of the production graph. Recipe nodes carry the
// resolved recipe, producer building, multiplier and machine group; all
// other kinds carry a single item flow.
type Node struct {
	ID   int      `json:"id"`
	Kind NodeKind `json:"kind"`

	Recipe     *domain.Recipe   `json:"-"`
	Building   *domain.Building `json:"-"`
	Multiplier float64          `json:"multiplier,omitempty"`
	ClockSpeed float64          `json:"clockSpeed,omitempty"`
	Machines   *MachineGroup    `json:"machines,omitempty"`

	ItemAmount ItemAmount `json:"itemAmount,omitempty"`

	edges []*Edge
}

// Edge is a directed item flow between two nodes.
type Edge struct {
	From   *Node   `json:"-"`
	To     *Node   `json:"-"`
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// Graph is the finished production graph.
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// AddNode appends a node and assigns its id.
func (g *Graph) AddNode(node *Node) *Node {
	node.ID = len(g.Nodes) + 1
	g.Nodes = append(g.Nodes, node)
	return node
}

// ConnectedEdges returns every edge touching the node.
func (n *Node) ConnectedEdges() []*Edge {
	return n.edges
}

// HasOutputTo reports whether the node has a directed edge into other.
// Visualization uses this to curve the two edges of a bidirectional node
// pair apart; it says nothing about graph validity.
func (n *Node) HasOutputTo(other *Node) bool {
	for _, edge := range n.edges {
		if edge.From == n && edge.To == other {
			return true
		}
	}
	return false
}

// Outputs returns the item rates the node feeds into the graph per minute.
func (n *Node) Outputs() []ItemAmount {
	switch n.Kind {
	case NodeRecipe:
		outputs := make([]ItemAmount, 0, len(n.Recipe.Products))
		for _, product := range n.Recipe.Products {
			rate := formula.ProductRatePerMinute(n.Recipe, product.Amount, n.ClockSpeed) * n.Multiplier
			outputs = append(outputs, ItemAmount{Item: product.Item, Amount: rate})
		}
		return outputs
	case NodeMiner, NodeInput:
		return []ItemAmount{n.ItemAmount}
	default:
		return nil
	}
}

// Inputs returns the item rates the node consumes from the graph per minute.
func (n *Node) Inputs() []ItemAmount {
	switch n.Kind {
	case NodeRecipe:
		inputs := make([]ItemAmount, 0, len(n.Recipe.Ingredients))
		for _, ingredient := range n.Recipe.Ingredients {
			rate := formula.ProductRatePerMinute(n.Recipe, ingredient.Amount, n.ClockSpeed) * n.Multiplier
			inputs = append(inputs, ItemAmount{Item: ingredient.Item, Amount: rate})
		}
		return inputs
	case NodeProduct, NodeByproduct, NodeSink:
		return []ItemAmount{n.ItemAmount}
	default:
		return nil
	}
}

// Title returns the renderer-facing display name of the node.
func (n *Node) Title() string {
	switch n.Kind {
	case NodeRecipe:
		return n.Recipe.Name
	case NodeMiner:
		return "Mine: " + n.ItemAmount.Item
	case NodeInput:
		return "Input: " + n.ItemAmount.Item
	case NodeProduct:
		return "Product: " + n.ItemAmount.Item
	case NodeByproduct:
		return "Byproduct: " + n.ItemAmount.Item
	case NodeSink:
		return "Sink: " + n.ItemAmount.Item
	default:
		return fmt.Sprintf("Node %d", n.ID)
	}
}
