// Package datastruct holds small generic containers.
// Each of them hands out forward cursors, so they can take part in an iterkit.Zip
// next to slices, ranges, and each other.
package datastruct

import "go.llib.dev/iterlab/pkg/iterkit"

var (
	_ iterkit.Forward[int]       = (*LinkedList[int])(nil)
	_ iterkit.Bidirectional[int] = (*LinkedList[int])(nil)
	_ iterkit.Forward[int]       = (*SortedSet[int])(nil)
	_ iterkit.Bidirectional[int] = (*SortedSet[int])(nil)
)
