package graph

// NodeView is the renderer-friendly projection of a node. The layout
// collaborator consumes ids, titles and flows; recipe internals stay
// server-side.
type NodeView struct {
	ID         int     `json:"id"`
	Kind       string  `json:"kind"`
	Title      string  `json:"title"`
	Recipe     string  `json:"recipe,omitempty"`
	Building   string  `json:"building,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	ClockSpeed float64 `json:"clockSpeed,omitempty"`
	Machines   int     `json:"machines,omitempty"`
	Item       string  `json:"item,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
}

// EdgeView is a directed item flow between two node ids.
type EdgeView struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// View is the serializable graph projection handed to the visualization
// layer.
type View struct {
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

func (k NodeKind) String() string {
	switch k {
	case NodeRecipe:
		return "recipe"
	case NodeMiner:
		return "miner"
	case NodeInput:
		return "input"
	case NodeProduct:
		return "product"
	case NodeByproduct:
		return "byproduct"
	case NodeSink:
		return "sink"
	default:
		return "unknown"
	}
}

// View projects the graph for rendering.
func (g *Graph) View() View {
	view := View{
		Nodes: make([]NodeView, 0, len(g.Nodes)),
		Edges: make([]EdgeView, 0, len(g.Edges)),
	}

	for _, node := range g.Nodes {
		nv := NodeView{
			ID:    node.ID,
			Kind:  node.Kind.String(),
			Title: node.Title(),
		}
		if node.Kind == NodeRecipe {
			nv.Recipe = node.Recipe.ClassName
			nv.Building = node.Building.ClassName
			nv.Multiplier = node.Multiplier
			nv.ClockSpeed = node.ClockSpeed
			nv.Machines = node.Machines.CountMachines()
		} else {
			nv.Item = node.ItemAmount.Item
			nv.Amount = node.ItemAmount.Amount
		}
		view.Nodes = append(view.Nodes, nv)
	}

	for _, edge := range g.Edges {
		view.Edges = append(view.Edges, EdgeView{
			From:   edge.From.ID,
			To:     edge.To.ID,
			Item:   edge.Item,
			Amount: edge.Amount,
		})
	}

	return view
}
