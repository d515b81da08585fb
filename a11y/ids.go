// Package a11y generates the accessibility identifiers and attribute maps
// that relate a trigger element to its floating content. The maps use
// ARIA-style keys so hosts that bridge to an accessibility tree can apply
// them directly; the toolkit itself only derives them.
package a11y

import (
	"fmt"
	"sync/atomic"
)

// IDGenerator produces unique identifier strings scoped to a namespace.
// Identifiers are never repeated within a generator's lifetime. Each
// component instance draws its trigger and content ids once at creation.
type IDGenerator struct {
	namespace string
	next      atomic.Uint64
}

// NewIDGenerator creates a generator whose ids are prefixed with namespace.
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Next returns the next identifier, formatted <namespace>-<prefix>-<n>.
func (g *IDGenerator) Next(prefix string) string {
	return fmt.Sprintf("%s-%s-%d", g.namespace, prefix, g.next.Add(1))
}

var defaultGenerator = NewIDGenerator("hoverlay")

// NextID draws from the process-wide default generator.
func NextID(prefix string) string {
	return defaultGenerator.Next(prefix)
}
