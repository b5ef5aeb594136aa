package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/DedS3t/monopoly-engine/app/models"
)

var (
	//go:embed properties.json
	classicProperties []byte
	//go:embed specials.json
	classicSpecials []byte
)

var ErrNotFound = errors.New("not found")

// LoadProperties reads a board layout. An empty path loads the classic board.
func LoadProperties(path string) ([]models.Property, error) {
	data, err := readOr(path, classicProperties)
	if err != nil {
		return nil, err
	}
	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return properties, nil
}

// LoadSpecials reads card decks keyed by space type (chest, chance).
func LoadSpecials(path string) (map[string][]models.Special, error) {
	data, err := readOr(path, classicSpecials)
	if err != nil {
		return nil, err
	}
	var specials map[string][]models.Special
	if err := json.Unmarshal(data, &specials); err != nil {
		return nil, fmt.Errorf("parse specials: %w", err)
	}
	return specials, nil
}

func GetByPos(pos int, properties []models.Property) (models.Property, error) { // O(N) time complexity
	for _, property := range properties {
		if property.Position == pos {
			return property, nil
		}
	}
	return models.Property{}, fmt.Errorf("position %d: %w", pos, ErrNotFound)
}

func GetByName(name string, properties []models.Property) (models.Property, error) { // O(N) time complexity
	for _, property := range properties {
		if property.Name == name {
			return property, nil
		}
	}
	return models.Property{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func readOr(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
