package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileInventory loads component records from one JSON file per map name
// inside a directory, standing in for the database join spec.md §6
// describes (components + damages + fragilities + coordinates) since a
// real MongoDB driver is out of scope. File name is "<map_name>.json",
// containing a top-level JSON array of Component.
//
// dir is deliberately a separate root from the grid map directory
// (config.Settings.InventoryDir vs. MapDir): a grid file is a JSON object
// ({"rows":..., "cells":[...]}) while an inventory file here is a JSON
// array ([{...}, {...}]); the two must never share a path or one format
// will fail to parse as the other.
type FileInventory struct {
	dir string
}

// NewFileInventory builds a FileInventory rooted at dir.
func NewFileInventory(dir string) *FileInventory {
	return &FileInventory{dir: dir}
}

// Components implements Inventory by reading "<dir>/<mapName>.json".
func (f *FileInventory) Components(_ context.Context, mapName string) ([]Component, error) {
	path := f.dir + "/" + mapName + ".json"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: reading inventory file %s: %w", path, err)
	}

	var components []Component
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("store: parsing inventory file %s: %w", path, err)
	}
	return components, nil
}
