package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hosogai/enkai/internal/models"
)

// LoadCatalog reads the drink catalog from a JSON file. The catalog is
// loaded once at startup and treated as immutable afterwards.
func LoadCatalog(path string) ([]models.DrinkEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read drink catalog: %w", err)
	}

	var catalog []models.DrinkEntry
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink catalog: %w", err)
	}

	return catalog, nil
}
