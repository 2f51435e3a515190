package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/validation"
)

// Schema paths
const (
	GameDataSchemaPath = "configs/schemas/gamedata.schema.json"
)

// Loader reads and validates a game-data snapshot from disk.
type Loader interface {
	Load(path string) (*Catalog, error)
}

type snapshotLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &snapshotLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      GameDataSchemaPath,
	}
}

// NewLoaderWithSchema creates a Loader validating against a custom schema
// path. Used by tests and the dataset-switch admin flow.
func NewLoaderWithSchema(schemaPath string) Loader {
	return &snapshotLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads, schema-validates and sanity-checks a snapshot file, and
// builds a Catalog over it.
func (l *snapshotLoader) Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(raw, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var data domain.GameData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if err := validateSnapshot(&data); err != nil {
		return nil, err
	}

	backfillClassNames(&data)

	return New(&data), nil
}

// validateSnapshot enforces the invariants downstream computation relies
// on: every recipe has at least one product, amounts are non-negative, and
// machine recipes have positive production time.
func validateSnapshot(data *domain.GameData) error {
	for class, recipe := range data.Recipes {
		if len(recipe.Products) == 0 {
			return fmt.Errorf("%w: recipe %s has no products", domain.ErrInvalidSnapshot, class)
		}
		for _, product := range recipe.Products {
			if product.Amount < 0 {
				return fmt.Errorf("%w: recipe %s has negative product amount for %s", domain.ErrInvalidSnapshot, class, product.Item)
			}
		}
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Amount < 0 {
				return fmt.Errorf("%w: recipe %s has negative ingredient amount for %s", domain.ErrInvalidSnapshot, class, ingredient.Item)
			}
		}
		if recipe.InMachine && recipe.Time <= 0 {
			return fmt.Errorf("%w: machine recipe %s has non-positive time", domain.ErrInvalidSnapshot, class)
		}
	}
	return nil
}

// backfillClassNames copies map keys into entities whose className field
// was omitted in the snapshot, so reverse lookups stay consistent.
func backfillClassNames(data *domain.GameData) {
	for class, item := range data.Items {
		if item.ClassName == "" {
			item.ClassName = class
		}
	}
	for class, recipe := range data.Recipes {
		if recipe.ClassName == "" {
			recipe.ClassName = class
		}
	}
	for class, building := range data.Buildings {
		if building.ClassName == "" {
			building.ClassName = class
		}
	}
	for class, miner := range data.Miners {
		if miner.ClassName == "" {
			miner.ClassName = class
		}
	}
	for class, generator := range data.Generators {
		if generator.ClassName == "" {
			generator.ClassName = class
		}
	}
	for class, schematic := range data.Schematics {
		if schematic.ClassName == "" {
			schematic.ClassName = class
		}
	}
	for class, corporation := range data.Corporations {
		if corporation.ClassName == "" {
			corporation.ClassName = class
		}
	}
}
