// SPDX-License-Identifier: MPL-2.0

package cookbook

import (
	"bufio"
	"io"
)

const (
	initialLineBuffer = 64 * 1024
	// maxLineSize bounds one line of metadata.rb or a recipe file.
	maxLineSize = 16 << 20
)

// newLineScanner returns a line scanner over r that accepts lines up to maxLineSize.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	return scanner
}
