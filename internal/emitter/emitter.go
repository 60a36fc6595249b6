// Package emitter holds one renderer per node kind. Each file registers its
// emitter with registry.Default in init(); importers pull the whole set in
// with a blank import.
package emitter

import "fmt"

func wrongProps(id string, props any) error {
	return fmt.Errorf("emitter: node %s carries %T properties", id, props)
}
