package graph

import (
	"context"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/logger"
	"github.com/skarn-dev/rupture-planner/internal/solver"
)

// Build converts a resolver edge map into a typed graph. Recipe edges are
// resolved against the catalog; a missing building becomes the synthetic
// Unknown building, while a missing recipe drops the edge (nothing can be
// computed from it). Item-typed edges for items absent from the catalog
// are dropped the same way, except mine edges: an item with no recipe is
// raw by definition, declared or not.
func Build(ctx context.Context, cat *catalog.Catalog, edges solver.EdgeMap) *Graph {
	log := logger.FromContext(ctx)
	g := &Graph{}

	for _, key := range edges.SortedKeys() {
		amount := edges[key]

		switch key.Kind {
		case solver.KindMine:
			g.AddNode(&Node{Kind: NodeMiner, ItemAmount: ItemAmount{Item: key.Item, Amount: amount}})
		case solver.KindSink:
			addItemNode(g, cat, NodeSink, key.Item, amount)
		case solver.KindProduct:
			addItemNode(g, cat, NodeProduct, key.Item, amount)
		case solver.KindByproduct:
			addItemNode(g, cat, NodeByproduct, key.Item, amount)
		case solver.KindInput:
			addItemNode(g, cat, NodeInput, key.Item, amount)
		case solver.KindRecipe:
			recipe := cat.RecipeByClass(key.Recipe)
			if recipe == nil {
				log.Warn("Dropping edge for unknown recipe", "recipe", key.Recipe)
				continue
			}
			building := cat.BuildingByClass(key.Building)
			if building == nil {
				building = domain.NewUnknownBuilding()
			}
			g.AddNode(&Node{
				Kind:       NodeRecipe,
				Recipe:     recipe,
				Building:   building,
				Multiplier: amount,
				ClockSpeed: key.ClockSpeed,
				Machines:   NewMachineGroup(building, amount, key.ClockSpeed),
			})
		}
	}

	g.GenerateEdges()
	return g
}

func addItemNode(g *Graph, cat *catalog.Catalog, kind NodeKind, itemClass string, amount float64) {
	if cat.ItemByClass(itemClass) == nil {
		return
	}
	g.AddNode(&Node{Kind: kind, ItemAmount: ItemAmount{Item: itemClass, Amount: amount}})
}

// GenerateEdges wires producers to consumers per shared item class. Flows
// are allocated greedily in node order, so a producer may split one item
// across several consumers. Over-production is left unallocated and
// surfaces later as surplus; amounts are not forced to balance.
func (g *Graph) GenerateEdges() {
	type demand struct {
		node      *Node
		remaining float64
	}

	demandsByItem := make(map[string][]*demand)
	for _, node := range g.Nodes {
		for _, input := range node.Inputs() {
			if input.Amount <= 0 {
				continue
			}
			demandsByItem[input.Item] = append(demandsByItem[input.Item], &demand{node: node, remaining: input.Amount})
		}
	}

	for _, producer := range g.Nodes {
		for _, output := range producer.Outputs() {
			remaining := output.Amount
			if remaining <= 0 {
				continue
			}
			for _, d := range demandsByItem[output.Item] {
				if remaining <= flowEpsilon {
					break
				}
				if d.remaining <= flowEpsilon {
					continue
				}
				flow := remaining
				if d.remaining < flow {
					flow = d.remaining
				}
				g.addEdge(producer, d.node, output.Item, flow)
				remaining -= flow
				d.remaining -= flow
			}
		}
	}
}

// flowEpsilon ignores residual demand/supply below rounding noise.
const flowEpsilon = 1e-9

func (g *Graph) addEdge(from, to *Node, item string, amount float64) {
	edge := &Edge{From: from, To: to, Item: item, Amount: amount}
	g.Edges = append(g.Edges, edge)
	from.edges = append(from.edges, edge)
	if to != from {
		to.edges = append(to.edges, edge)
	}
}
