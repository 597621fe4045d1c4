// Package idgen generates the catalog's entity identifiers and user access
// tokens from a cryptographically strong random source.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fedcloud/catalog"
)

var (
	_ catalog.IDGenerator    = (*Generator)(nil)
	_ catalog.TokenGenerator = (*Generator)(nil)
)

// Generator produces prefix-tagged UUID identifiers and bare-UUID bearer
// tokens. A single mutex serializes every draw from the shared randomness
// source; generation is a narrow critical section, not a bottleneck.
//
// Uniqueness is probabilistic: 128 bits of entropy make a collision
// astronomically unlikely, and nothing checks for one locally. Tokens carry
// no structure at all, which leaves no way to derive or guess one.
type Generator struct {
	mu      sync.Mutex
	newUUID func() (uuid.UUID, error)
}

// GeneratorOp is an option for a Generator.
type GeneratorOp func(*Generator)

// WithUUIDFn overrides the UUID source, for tests.
func WithUUIDFn(fn func() (uuid.UUID, error)) GeneratorOp {
	return func(g *Generator) {
		g.newUUID = fn
	}
}

// NewGenerator returns a new Generator drawing from crypto/rand.
func NewGenerator(opts ...GeneratorOp) *Generator {
	gen := &Generator{}
	for _, f := range opts {
		f(gen)
	}
	if gen.newUUID == nil {
		gen.newUUID = uuid.NewRandom
	}
	return gen
}

// UserID creates a random ID for a new user.
func (g *Generator) UserID() string {
	return catalog.UserIDPrefix + g.next()
}

// VOID creates a random ID for a new VO.
func (g *Generator) VOID() string {
	return catalog.VOIDPrefix + g.next()
}

// ClusterID creates a random ID for a new cluster.
func (g *Generator) ClusterID() string {
	return catalog.ClusterIDPrefix + g.next()
}

// InstanceID creates a random ID for a new application instance.
func (g *Generator) InstanceID() string {
	return catalog.InstanceIDPrefix + g.next()
}

// Token creates a random access token for a user.
func (g *Generator) Token() string {
	return g.next()
}

func (g *Generator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := g.newUUID()
	if err != nil {
		// The entropy source failing is not a recoverable condition.
		panic(fmt.Sprintf("idgen: unable to read from entropy source: %v", err))
	}
	return id.String()
}
