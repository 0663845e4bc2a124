// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"sync"

	"github.com/invowk/measures/pkg/catalog"
)

var loadBuiltin = sync.OnceValues(func() (*catalog.Catalog, error) {
	return Load(builtinSource, WithFilename("builtin.cue"))
})

// Builtin returns a copy of the embedded catalog of SI base dimensions and
// common metric, imperial and time units. The embedded file is resolved once.
func Builtin() (*catalog.Catalog, error) {
	c, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}
