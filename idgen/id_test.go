package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/idgen"
)

func TestGeneratorIDShape(t *testing.T) {
	gen := idgen.NewGenerator()

	tests := []struct {
		name   string
		gen    func() string
		prefix string
		isID   func(string) bool
	}{
		{"user", gen.UserID, catalog.UserIDPrefix, catalog.IsUserID},
		{"vo", gen.VOID, catalog.VOIDPrefix, catalog.IsVOID},
		{"cluster", gen.ClusterID, catalog.ClusterIDPrefix, catalog.IsClusterID},
		{"instance", gen.InstanceID, catalog.InstanceIDPrefix, catalog.IsInstanceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.gen()
			require.True(t, strings.HasPrefix(id, tt.prefix))
			require.NoError(t, uuid.Validate(strings.TrimPrefix(id, tt.prefix)))
			require.True(t, tt.isID(id))
		})
	}
}

func TestGeneratorUniqueness(t *testing.T) {
	gen := idgen.NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := gen.UserID()
		require.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestGeneratorTokenIsBareUUID(t *testing.T) {
	gen := idgen.NewGenerator()

	token := gen.Token()
	require.NoError(t, uuid.Validate(token))
	require.False(t, strings.Contains(token, "_"))
}

func TestGeneratorConcurrentUse(t *testing.T) {
	gen := idgen.NewGenerator()

	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]string, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				ids = append(ids, gen.InstanceID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}

func TestGeneratorIDShapeRejectsForeignKinds(t *testing.T) {
	gen := idgen.NewGenerator()

	require.False(t, catalog.IsVOID(gen.UserID()))
	require.False(t, catalog.IsUserID("alice"))
	require.False(t, catalog.IsUserID(catalog.UserIDPrefix+"not-a-uuid"))
}
