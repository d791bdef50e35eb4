package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "nested", "state.json")

	mgr, err := NewManager(statePath)
	require.NoError(t, err)
	assert.Equal(t, statePath, mgr.Path())

	st, err := mgr.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Clusters)

	rec := ClusterRecord{
		Version:   "1.30",
		Layer:     "integ/v1-30/KubectlLayer",
		NodeImage: "kindest/node:v1.30.13",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, mgr.RecordCluster("k8s-layers-v1-30", rec))

	// A fresh manager reads what the first one wrote.
	mgr2, err := NewManager(statePath)
	require.NoError(t, err)
	st, err = mgr2.Load()
	require.NoError(t, err)
	assert.Equal(t, rec, st.Clusters["k8s-layers-v1-30"])

	require.NoError(t, mgr2.ForgetCluster("k8s-layers-v1-30"))
	require.NoError(t, mgr2.ForgetCluster("missing"))
	st, err = mgr.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Clusters)
}

func TestLoad_Corrupt(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(statePath, []byte("{not json"), 0644))

	mgr, err := NewManager(statePath)
	require.NoError(t, err)
	_, err = mgr.Load()
	assert.ErrorContains(t, err, "failed to parse state file")
}

func TestNewManager_DefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	mgr, err := NewManager("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".k8s-layers", "state.json"), mgr.Path())
}
