package focus

import (
	"math"

	"github.com/julianstephens/zenfocus/internal/constants"
)

// DropAction describes what a drop resolved to.
type DropAction int

const (
	// DropNone means the drop had no effect.
	DropNone DropAction = iota
	// DropReorder means the task moved within the Today partition.
	DropReorder
	// DropFocus means the task entered the Today partition.
	DropFocus
	// DropUnfocus means the task returned to the Someday partition.
	DropUnfocus
)

// ResolveDropIndex maps a drag pointer's vertical offset within a list to an
// insertion index, clamped to [0, listLen]. The computation is a pure
// function of the pointer and list geometry.
func ResolveDropIndex(pointerY, rowHeight float64, listLen int) int {
	if listLen < 0 {
		listLen = 0
	}
	if rowHeight <= 0 {
		return 0
	}

	// Clamp in float space: converting an out-of-int-range quotient is
	// implementation-defined and would wrap a huge offset to 0.
	estimated := math.Floor(pointerY / rowHeight)
	if estimated < 0 {
		return 0
	}
	if estimated > float64(listLen) {
		return listLen
	}
	return int(estimated)
}

// HandleDrop applies a drag-and-drop release of taskID onto the target
// partition. Whether the drop is a same-partition move or a cross-partition
// transfer is decided by where the task resides right now, not by where the
// gesture began: the partitions may have mutated mid-drag.
func (c *Coordinator) HandleDrop(taskID string, target constants.Partition, pointerY, rowHeight float64) DropAction {
	switch target {
	case constants.PartitionToday:
		index := ResolveDropIndex(pointerY, rowHeight, c.today.Len())
		if c.today.Contains(taskID) {
			from := c.today.IndexOf(taskID)
			c.ReorderToday(from, index)
			return DropReorder
		}
		if _, ok := c.tasks[taskID]; !ok {
			return DropNone
		}
		c.AddTaskToFocus(taskID, &index)
		return DropFocus

	case constants.PartitionSomeday:
		if c.today.Contains(taskID) {
			c.RemoveTaskFromFocus(taskID)
			return DropUnfocus
		}
		// Someday is recency-ordered only; dropping within it changes nothing.
		return DropNone
	}

	return DropNone
}
