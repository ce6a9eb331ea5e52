// SPDX-License-Identifier: MIT
package montri

import "errors"

// ErrEmptyMonotonePolygon indicates Triangulate was called with no
// vertices at all.
var ErrEmptyMonotonePolygon = errors.New("montri: monotone polygon has no vertices")
