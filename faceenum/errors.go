// SPDX-License-Identifier: MIT
package faceenum

import "errors"

// ErrEmptySubdivision indicates Enumerate was called on a subdivision with
// no vertices at all.
var ErrEmptySubdivision = errors.New("faceenum: subdivision has no vertices")
