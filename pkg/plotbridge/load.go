package plotbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// CheckInputs returns ErrFileNotFound for the first path that does not exist.
func CheckInputs(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
	}
	return nil
}

// LoadData parses a JSON array of trace mappings.
func LoadData(path string) ([]map[string]interface{}, error) {
	var data []map[string]interface{}
	if err := loadJSON(path, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadLayout parses a JSON layout mapping. A JSON null yields an empty layout.
func LoadLayout(path string) (models.Layout, error) {
	var layout models.Layout
	if err := loadJSON(path, &layout); err != nil {
		return nil, err
	}
	if layout == nil {
		layout = models.Layout{}
	}
	return layout, nil
}

func loadJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedJSON, path, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: %s: trailing data after JSON value", ErrMalformedJSON, path)
	}
	return nil
}
