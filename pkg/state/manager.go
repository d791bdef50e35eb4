// Package state records the clusters k8s-layers has provisioned.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ClusterRecord describes one provisioned cluster.
type ClusterRecord struct {
	Version   string    `json:"version"`
	Layer     string    `json:"layer"`
	NodeImage string    `json:"node_image"`
	CreatedAt time.Time `json:"created_at"`
}

// State represents the persistent application state.
type State struct {
	Clusters map[string]ClusterRecord `json:"clusters"`
}

// Manager handles saving and loading of application state.
type Manager struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns ~/.k8s-layers/state.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".k8s-layers", "state.json"), nil
}

// NewManager creates a new state manager.
// If path is empty, it defaults to DefaultPath.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	return &Manager{
		path: path,
	}, nil
}

// Path returns the state file location.
func (m *Manager) Path() string {
	return m.path
}

// Load loads the state from disk.
// If the file doesn't exist, it returns an empty state.
func (m *Manager) Load() (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Save persists the state to disk.
func (m *Manager) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(state)
}

// RecordCluster stores rec under name, replacing any previous record.
func (m *Manager) RecordCluster(name string, rec ClusterRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.load()
	if err != nil {
		return err
	}
	state.Clusters[name] = rec
	return m.save(state)
}

// ForgetCluster removes the record for name, if any.
func (m *Manager) ForgetCluster(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.load()
	if err != nil {
		return err
	}
	if _, ok := state.Clusters[name]; !ok {
		return nil
	}
	delete(state.Clusters, name)
	return m.save(state)
}

func (m *Manager) load() (*State, error) {
	state := &State{
		Clusters: make(map[string]ClusterRecord),
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.Clusters == nil {
		state.Clusters = make(map[string]ClusterRecord)
	}

	return state, nil
}

func (m *Manager) save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
