package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the top-level JSON structure for plan export and import.
// Records reference each other by ref, a file-local identifier that is
// replaced with a generated ID on import.
type Snapshot struct {
	Version    int                `json:"version"`
	ExportedAt string             `json:"exported_at,omitempty"`
	Resources  []ResourceRecord   `json:"resources,omitempty"`
	Tasks      []TaskRecord       `json:"tasks"`
	Holidays   []HolidayRecord    `json:"holidays,omitempty"`
	SizeCosts  map[string]float64 `json:"size_costs,omitempty"`
}

// TaskRecord defines a task in the snapshot file.
type TaskRecord struct {
	Ref          string   `json:"ref"`
	Name         string   `json:"name"`
	Owner        string   `json:"owner,omitempty"`
	Size         string   `json:"size,omitempty"`
	StartDate    string   `json:"start_date"`
	DueDate      *string  `json:"due_date,omitempty"`
	Hours        *int     `json:"hours,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	ResourceRef  *string  `json:"resource_ref,omitempty"`
}

// ResourceRecord defines a resource in the snapshot file.
type ResourceRecord struct {
	Ref      string   `json:"ref"`
	Name     string   `json:"name"`
	Capacity *float64 `json:"capacity,omitempty"`
}

// HolidayRecord defines a non-working day in the snapshot file.
type HolidayRecord struct {
	Day  string `json:"day"`
	Name string `json:"name"`
}

// CurrentVersion is the snapshot format written by Export.
const CurrentVersion = 1

// Load reads and parses a snapshot JSON file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &snap, nil
}

// Save writes a snapshot as indented JSON.
func Save(snap *Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
