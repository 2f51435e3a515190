package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/graph"
)

// powerEpsilon normalizes floating-point noise between average and max
// draw to "not variable".
const powerEpsilon = 1e-8

// Aggregate walks the finished graph and derives the full report. It is a
// pure read over graph and catalog; no recursion back into the resolver.
func Aggregate(cat *catalog.Catalog, request *domain.PlanRequest, g *graph.Graph) *Report {
	a := &aggregator{catalog: cat, request: request, graph: g}
	a.tallyItems()

	return &Report{
		Buildings:          a.buildings(),
		Items:              a.items(),
		Input:              a.input(),
		RawResources:       a.rawResources(),
		Output:             a.itemNodeSums(graph.NodeProduct),
		Byproducts:         a.itemNodeSums(graph.NodeByproduct),
		Power:              a.power(),
		UnlockRequirements: a.unlockRequirements(),
	}
}

type itemTally struct {
	produced  float64
	consumed  float64
	producers []Contribution
	consumers []Contribution
}

type aggregator struct {
	catalog *catalog.Catalog
	request *domain.PlanRequest
	graph   *graph.Graph

	tallies map[string]*itemTally
}

func (a *aggregator) tally(itemClass string) *itemTally {
	t, ok := a.tallies[itemClass]
	if !ok {
		t = &itemTally{}
		a.tallies[itemClass] = t
	}
	return t
}

// tallyItems sums item flows per class. Recipe, miner and input nodes
// produce; only recipe nodes consume. Product/byproduct/sink nodes are
// chain exits, not consumers, so surplus stays visible in diff.
func (a *aggregator) tallyItems() {
	a.tallies = make(map[string]*itemTally)
	for _, node := range a.graph.Nodes {
		for _, out := range node.Outputs() {
			t := a.tally(out.Item)
			t.produced += out.Amount
			t.producers = append(t.producers, Contribution{NodeID: node.ID, Source: node.Title(), Amount: out.Amount})
		}
		if node.Kind != graph.NodeRecipe {
			continue
		}
		for _, in := range node.Inputs() {
			t := a.tally(in.Item)
			t.consumed += in.Amount
			t.consumers = append(t.consumers, Contribution{NodeID: node.ID, Source: node.Title(), Amount: in.Amount})
		}
	}
}

func (a *aggregator) items() []ItemBalance {
	items := make([]ItemBalance, 0, len(a.tallies))
	for class, t := range a.tallies {
		balance := ItemBalance{
			Item:      class,
			Name:      a.itemName(class),
			Produced:  round(t.produced),
			Consumed:  round(t.consumed),
			Diff:      round(t.produced - t.consumed),
			Producers: withPercentages(t.producers, t.produced),
			Consumers: withPercentages(t.consumers, t.consumed),
		}
		items = append(items, balance)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Item < items[j].Item
	})
	return items
}

func withPercentages(contributions []Contribution, total float64) []Contribution {
	if total <= 0 {
		return contributions
	}
	for i := range contributions {
		contributions[i].Percentage = round(contributions[i].Amount / total * 100)
	}
	return contributions
}

func (a *aggregator) buildings() []BuildingUsage {
	byClass := make(map[string]*BuildingUsage)
	var order []string

	for _, node := range a.graph.Nodes {
		if node.Kind != graph.NodeRecipe {
			continue
		}
		class := node.Building.ClassName
		usage, ok := byClass[class]
		if !ok {
			usage = &BuildingUsage{Building: class, Name: node.Building.Name}
			byClass[class] = usage
			order = append(order, class)
		}

		entry := BuildingRecipeUsage{
			Recipe:     node.Recipe.ClassName,
			Name:       node.Recipe.Name,
			Amount:     node.Machines.CountMachines(),
			Multiplier: node.Multiplier,
			ClockSpeed: node.ClockSpeed,
			Power:      normalizePower(node.Machines.Power),
		}
		usage.Recipes = append(usage.Recipes, entry)
		usage.Amount += entry.Amount
		usage.Power.Average += entry.Power.Average
		usage.Power.Max += entry.Power.Max
	}

	usages := make([]BuildingUsage, 0, len(order))
	for _, class := range order {
		usage := byClass[class]
		usage.Power = normalizePower(usage.Power)
		usage.Cost = a.buildingCost(class, usage.Amount)
		usages = append(usages, *usage)
	}
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Name != usages[j].Name {
			return usages[i].Name < usages[j].Name
		}
		return usages[i].Building < usages[j].Building
	})
	return usages
}

// buildingCost prices the construction of count machines via the
// building's construction recipe, when one is known.
func (a *aggregator) buildingCost(buildingClass string, count int) []ItemRate {
	recipe := a.catalog.BuildingCostRecipe(buildingClass)
	if recipe == nil || count == 0 {
		return nil
	}
	cost := make([]ItemRate, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		cost = append(cost, ItemRate{
			Item:   ingredient.Item,
			Name:   a.itemName(ingredient.Item),
			Amount: ingredient.Amount * float64(count),
		})
	}
	return cost
}

func (a *aggregator) input() []InputUsage {
	var usages []InputUsage
	for _, supplied := range a.request.Input {
		if supplied.Item == "" {
			continue
		}
		usage := InputUsage{
			Item: supplied.Item,
			Name: a.itemName(supplied.Item),
			Max:  supplied.Amount,
		}
		if t, ok := a.tallies[supplied.Item]; ok {
			usage.Used = round(t.consumed)
			usage.ProducedExtra = round(t.produced)
		}
		if usage.Max > 0 {
			usage.UsedPercentage = round(usage.Used / usage.Max * 100)
		}
		usages = append(usages, usage)
	}
	return usages
}

func (a *aggregator) rawResources() []RawResourceUsage {
	mined := make(map[string]float64)
	for _, node := range a.graph.Nodes {
		if node.Kind == graph.NodeMiner {
			mined[node.ItemAmount.Item] += node.ItemAmount.Amount
		}
	}

	var usages []RawResourceUsage
	seen := make(map[string]bool)
	for _, resource := range a.catalog.Resources() {
		seen[resource.Item] = true
		usages = append(usages, a.rawResourceUsage(resource.Item, mined[resource.Item]))
	}

	// Items mined without a declared resource entry still show up, with
	// whatever default cap the snapshot carries.
	var undeclared []string
	for class := range mined {
		if !seen[class] {
			undeclared = append(undeclared, class)
		}
	}
	sort.Slice(undeclared, func(i, j int) bool {
		return a.itemName(undeclared[i]) < a.itemName(undeclared[j])
	})
	for _, class := range undeclared {
		usages = append(usages, a.rawResourceUsage(class, mined[class]))
	}
	return usages
}

func (a *aggregator) rawResourceUsage(itemClass string, used float64) RawResourceUsage {
	limit := a.catalog.ResourceCap(itemClass)
	if override, ok := a.request.ResourceMax[itemClass]; ok {
		limit = override
	}
	usage := RawResourceUsage{
		Item:    itemClass,
		Name:    a.itemName(itemClass),
		Enabled: !a.request.IsBlocked(itemClass),
		Cap:     limit,
		Used:    round(used),
	}
	if limit > 0 {
		usage.UsedPercentage = round(used / limit * 100)
	}
	return usage
}

func (a *aggregator) itemNodeSums(kind graph.NodeKind) []ItemRate {
	sums := make(map[string]float64)
	for _, node := range a.graph.Nodes {
		if node.Kind == kind {
			sums[node.ItemAmount.Item] += node.ItemAmount.Amount
		}
	}
	rates := make([]ItemRate, 0, len(sums))
	for class, amount := range sums {
		rates = append(rates, ItemRate{Item: class, Name: a.itemName(class), Amount: round(amount)})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Name != rates[j].Name {
			return rates[i].Name < rates[j].Name
		}
		return rates[i].Item < rates[j].Item
	})
	return rates
}

func (a *aggregator) power() PowerReport {
	byRecipe := make(map[string]*PowerEntry)
	byBuilding := make(map[string]*PowerEntry)
	var total graph.Power

	for _, node := range a.graph.Nodes {
		if node.Kind != graph.NodeRecipe {
			continue
		}
		power := node.Machines.Power
		addPower(byRecipe, node.Recipe.ClassName, node.Recipe.Name, power)
		addPower(byBuilding, node.Building.ClassName, node.Building.Name, power)
		total.Average += power.Average
		total.Max += power.Max
	}

	return PowerReport{
		ByRecipe:   sortedPowerEntries(byRecipe),
		ByBuilding: sortedPowerEntries(byBuilding),
		Total:      normalizePower(total),
	}
}

func addPower(entries map[string]*PowerEntry, id, name string, power graph.Power) {
	entry, ok := entries[id]
	if !ok {
		entry = &PowerEntry{ID: id, Name: name}
		entries[id] = entry
	}
	entry.Power.Average += power.Average
	entry.Power.Max += power.Max
}

func sortedPowerEntries(entries map[string]*PowerEntry) []PowerEntry {
	sorted := make([]PowerEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Power = normalizePower(entry.Power)
		sorted = append(sorted, *entry)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// normalizePower recomputes the variable flag from the summed values so a
// sub-epsilon gap between average and max never reads as variable power.
func normalizePower(power graph.Power) graph.Power {
	power.IsVariable = math.Abs(power.Max-power.Average) > powerEpsilon
	return power
}

func (a *aggregator) unlockRequirements() []UnlockRequirement {
	var requirements []UnlockRequirement
	seen := make(map[string]bool)
	add := func(req UnlockRequirement) {
		key := fmt.Sprintf("%s:%s:%d", req.Type, req.ID, req.Level)
		if seen[key] {
			return
		}
		seen[key] = true
		requirements = append(requirements, req)
	}

	for _, node := range a.graph.Nodes {
		if node.Kind != graph.NodeRecipe {
			continue
		}
		if schematic := a.catalog.SchematicUnlockingRecipe(node.Recipe.ClassName); schematic != nil {
			add(UnlockRequirement{Type: UnlockTypeRecipe, ID: schematic.ClassName, Name: schematic.Name})
		}
		for _, unlock := range a.catalog.CorporationUnlocksForBuilding(node.Building.ClassName) {
			add(UnlockRequirement{
				Type:  UnlockTypeBuilding,
				ID:    unlock.Corporation.ClassName,
				Name:  unlock.Corporation.Name,
				Level: unlock.Level,
			})
		}
	}

	sort.Slice(requirements, func(i, j int) bool {
		if requirements[i].Type != requirements[j].Type {
			// "building" < "recipe" lexically; recipes sort first by policy.
			return requirements[i].Type == UnlockTypeRecipe
		}
		if requirements[i].Name != requirements[j].Name {
			return requirements[i].Name < requirements[j].Name
		}
		return requirements[i].Level < requirements[j].Level
	})
	return requirements
}

func (a *aggregator) itemName(itemClass string) string {
	if item := a.catalog.ItemByClass(itemClass); item != nil {
		return item.Name
	}
	return itemClass
}

// round trims float noise from display values to six decimal places.
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
