// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuf

import "fmt"

// Align returns the smallest multiple of alignment that is >= value,
// e.g., if alignment = 256 and value = 864, it returns 1024.
// alignment must be a positive power of two; Align panics otherwise.
func Align(value, alignment int) int {
	if !IsPowerOfTwo(alignment) {
		panic(fmt.Sprintf("meshbuf.Align: alignment %d is not a power of two", alignment))
	}
	mask := alignment - 1
	return (value + mask) &^ mask
}

// IsPowerOfTwo returns whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
