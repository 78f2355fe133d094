package focus

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/errors"
	"github.com/julianstephens/zenfocus/internal/events"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/models"
	"github.com/julianstephens/zenfocus/internal/storage"
	"github.com/julianstephens/zenfocus/internal/validation"
)

// Coordinator owns the two task partitions (Today / Someday) and mediates
// every mutation on them. The in-memory state is authoritative for the
// session: each mutation applies immediately and persistence is dispatched
// afterwards without being awaited. Save failures are logged and surfaced on
// the notices channel; they are never rolled back.
//
// All mutation entry points must be called from a single goroutine (the UI
// event loop); only the persistence worker runs concurrently, and it touches
// nothing but the store.
type Coordinator struct {
	store storage.Provider
	bus   *events.Bus

	today   *PartitionSet
	someday *PartitionSet
	tasks   map[string]models.Task

	// lastPartition remembers which partition a task left at completion so
	// un-completing can restore it. Session-scoped; tasks completed in a
	// prior session fall back to Someday.
	lastPartition map[string]constants.Partition

	lastReset time.Time

	saves   chan func() error
	drained chan struct{}
	notices chan error
	changes chan struct{}
}

// NewCoordinator creates a coordinator over the given store and event bus
// and starts its persistence worker. Call Load before use and Close when done.
func NewCoordinator(store storage.Provider, bus *events.Bus) *Coordinator {
	c := &Coordinator{
		store:         store,
		bus:           bus,
		today:         NewPartitionSet(),
		someday:       NewPartitionSet(),
		tasks:         make(map[string]models.Task),
		lastPartition: make(map[string]constants.Partition),
		saves:         make(chan func() error, 64),
		drained:       make(chan struct{}),
		notices:       make(chan error, 16),
		changes:       make(chan struct{}, 1),
	}

	go c.runSaver()
	return c
}

func (c *Coordinator) runSaver() {
	for fn := range c.saves {
		if err := fn(); err != nil {
			logger.Error("Persistence save failed", "error", err)
			select {
			case c.notices <- err:
			default:
			}
		}
	}
	close(c.drained)
}

// Load populates the partitions from the store. Fetch failures are returned
// to the caller; the coordinator stays usable with whatever loaded.
func (c *Coordinator) Load() error {
	focusTasks, err := c.store.GetFocusTasks()
	if err != nil {
		return errors.Store("fetch focus tasks", err)
	}
	availableTasks, err := c.store.GetAvailableTasks()
	if err != nil {
		return errors.Store("fetch available tasks", err)
	}

	c.today.Clear()
	c.someday.Clear()
	c.tasks = make(map[string]models.Task)

	for _, t := range focusTasks {
		c.tasks[t.ID] = t
		c.today.Append(t.ID)
	}
	for _, t := range availableTasks {
		c.tasks[t.ID] = t
		c.someday.Append(t.ID)
	}

	if raw, err := c.store.GetConfigValue(constants.ConfigLastDailyFocusResetDate); err == nil && raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			c.lastReset = ts
		}
	}

	c.notifyChange()
	return nil
}

// Close stops the persistence worker after draining pending saves.
func (c *Coordinator) Close() {
	close(c.saves)
	<-c.drained
}

// Flush blocks until every previously dispatched save has been attempted.
func (c *Coordinator) Flush() {
	done := make(chan struct{})
	c.saves <- func() error {
		close(done)
		return nil
	}
	<-done
}

// Changes returns a channel that receives a signal after every mutation.
// Signals coalesce; callers re-read the snapshot on each receive.
func (c *Coordinator) Changes() <-chan struct{} {
	return c.changes
}

// Notices returns the channel carrying surfaced save failures.
func (c *Coordinator) Notices() <-chan error {
	return c.notices
}

// Today returns the Today partition's tasks in order.
func (c *Coordinator) Today() []models.Task {
	return c.snapshot(c.today)
}

// Someday returns the Someday partition's tasks in order.
func (c *Coordinator) Someday() []models.Task {
	return c.snapshot(c.someday)
}

// Track registers a task record without placing it in a partition. Used to
// make completed tasks (absent from both partitions) addressable for
// ToggleTaskCompletion. Tasks already tracked keep their current record.
func (c *Coordinator) Track(task models.Task) {
	if _, ok := c.tasks[task.ID]; ok {
		return
	}
	c.tasks[task.ID] = task
}

// Task returns the coordinator's record of a task, if tracked.
func (c *Coordinator) Task(id string) (models.Task, bool) {
	t, ok := c.tasks[id]
	return t, ok
}

func (c *Coordinator) snapshot(p *PartitionSet) []models.Task {
	out := make([]models.Task, 0, p.Len())
	for _, id := range p.IDs() {
		if t, ok := c.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// AddTaskToFocus moves a task from Someday (or untracked) into Today. A nil
// index appends; any other index is clamped. If the task is already in Today
// this is a move, and a no-op when the position would not change.
func (c *Coordinator) AddTaskToFocus(id string, index *int) {
	task, ok := c.tasks[id]
	if !ok || task.Completed() {
		return
	}

	if c.today.Contains(id) {
		if index == nil {
			return
		}
		c.today.Insert(id, *index)
	} else {
		c.someday.Remove(id)
		if index == nil {
			c.today.Append(id)
		} else {
			c.today.Insert(id, *index)
		}
	}

	task.InDailyFocus = true
	c.tasks[id] = task

	c.persistToday()
	c.notifyChange()
}

// RemoveTaskFromFocus moves a task from Today back to Someday, appending
// rather than restoring a position. A no-op if the task is not in Today.
func (c *Coordinator) RemoveTaskFromFocus(id string) {
	if !c.today.Remove(id) {
		return
	}

	task := c.tasks[id]
	task.InDailyFocus = false
	task.FocusOrder = 0
	c.tasks[id] = task
	c.someday.Append(id)

	c.persistToday(id)
	c.notifyChange()
}

// ReorderToday moves the Today entry at from to position to. Indices are
// clamped; Someday is untouched.
func (c *Coordinator) ReorderToday(from, to int) {
	c.today.Move(from, to)
	c.persistToday()
	c.notifyChange()
}

// ResetDailyFocus empties Today, returning every task to Someday.
func (c *Coordinator) ResetDailyFocus() {
	moved := c.today.IDs()
	for _, id := range moved {
		task := c.tasks[id]
		task.InDailyFocus = false
		task.FocusOrder = 0
		c.tasks[id] = task
		c.someday.Append(id)
	}
	c.today.Clear()

	c.persistToday(moved...)
	c.notifyChange()
}

// CheckAndResetDailyFocus performs the daily rollover: when now falls on a
// later calendar day than the last recorded reset, Today is reset and the
// reset instant recorded. Idempotent within a single calendar day. Returns
// whether a reset happened.
func (c *Coordinator) CheckAndResetDailyFocus(now time.Time) bool {
	if !c.lastReset.IsZero() && sameCalendarDay(c.lastReset, now) {
		return false
	}

	didReset := false
	if !c.lastReset.IsZero() {
		c.ResetDailyFocus()
		didReset = true
	}

	c.lastReset = now
	stamp := now.Format(time.RFC3339)
	c.dispatch("save reset date", func() error {
		if err := c.store.SetConfigValue(constants.ConfigLastDailyFocusResetDate, stamp); err != nil {
			return err
		}
		return c.store.SetConfigValue(constants.ConfigLastPlanDate, stamp)
	})

	return didReset
}

// CompleteTask marks a task done and removes it from whichever partition
// holds it. Completed tasks belong to neither partition.
func (c *Coordinator) CompleteTask(id string) {
	task, ok := c.tasks[id]
	if !ok || task.Completed() {
		return
	}

	wasInToday := c.today.Remove(id)
	if wasInToday {
		c.lastPartition[id] = constants.PartitionToday
	} else {
		c.someday.Remove(id)
		c.lastPartition[id] = constants.PartitionSomeday
	}

	now := time.Now()
	task.CompletedAt = &now
	task.InDailyFocus = false
	task.FocusOrder = 0
	c.tasks[id] = task

	c.persistToday(id)
	c.bus.Publish(events.Event{Topic: events.TaskCompleted, TaskID: id})
	c.notifyChange()
}

// ToggleTaskCompletion completes an open task, or re-opens a completed one
// and appends it to the partition it last belonged to. When that partition
// is unknown the task lands in Someday.
func (c *Coordinator) ToggleTaskCompletion(id string) {
	task, ok := c.tasks[id]
	if !ok {
		return
	}

	if !task.Completed() {
		c.CompleteTask(id)
		return
	}

	task.CompletedAt = nil
	if c.lastPartition[id] == constants.PartitionToday {
		task.InDailyFocus = true
		c.tasks[id] = task
		c.today.Append(id)
		c.persistToday()
	} else {
		task.InDailyFocus = false
		c.tasks[id] = task
		c.someday.Append(id)
		c.persistTasks(task)
	}

	c.notifyChange()
}

// AddNewTask validates and registers a freshly created task, routing it into
// Today or Someday per the flag. Validation failures leave all state
// untouched.
func (c *Coordinator) AddNewTask(task models.Task, toDailyFocus bool) error {
	if err := validation.TaskTitle(task.Title); err != nil {
		return err
	}

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	c.tasks[task.ID] = task
	if toDailyFocus {
		task.InDailyFocus = true
		c.tasks[task.ID] = task
		c.today.Append(task.ID)
		c.persistToday()
	} else {
		c.someday.Append(task.ID)
		c.persistTasks(task)
	}

	c.notifyChange()
	return nil
}

// DeleteTask removes a task from the coordinator and deletes it from the
// store. A no-op for unknown ids.
func (c *Coordinator) DeleteTask(id string) {
	if _, ok := c.tasks[id]; !ok {
		return
	}

	wasInToday := c.today.Remove(id)
	c.someday.Remove(id)
	delete(c.tasks, id)
	delete(c.lastPartition, id)

	c.dispatch("delete task", func() error {
		return c.store.DeleteTask(id)
	})
	if wasInToday {
		c.persistToday()
	}
	c.notifyChange()
}

// AddFocusTime accumulates focused seconds on an open task. Non-positive
// durations are ignored, keeping the total monotonically non-decreasing.
func (c *Coordinator) AddFocusTime(id string, d time.Duration) {
	task, ok := c.tasks[id]
	if !ok || task.Completed() || d <= 0 {
		return
	}

	task.FocusedDuration += int(d.Seconds())
	c.tasks[id] = task
	c.persistTasks(task)
	c.notifyChange()
}

// PauseTask flips a task's pause flag and announces the change.
func (c *Coordinator) PauseTask(id string, paused bool) {
	task, ok := c.tasks[id]
	if !ok || task.Completed() || task.Paused == paused {
		return
	}

	task.Paused = paused
	c.tasks[id] = task
	c.persistTasks(task)
	c.bus.Publish(events.Event{Topic: events.TaskPauseStateChanged, TaskID: id, Paused: paused})
	c.notifyChange()
}

// persistToday reindexes the Today partition and dispatches a save of every
// Today task plus any extra ids passed in (tasks that just left Today).
func (c *Coordinator) persistToday(extra ...string) {
	var affected []models.Task
	for i, id := range c.today.IDs() {
		task := c.tasks[id]
		task.FocusOrder = i
		c.tasks[id] = task
		affected = append(affected, task)
	}
	for _, id := range extra {
		if task, ok := c.tasks[id]; ok {
			affected = append(affected, task)
		}
	}
	c.persistTasks(affected...)
}

func (c *Coordinator) persistTasks(tasks ...models.Task) {
	if len(tasks) == 0 {
		return
	}
	batch := make([]models.Task, len(tasks))
	copy(batch, tasks)
	c.dispatch("save tasks", func() error {
		return c.store.UpsertTasks(batch)
	})
}

func (c *Coordinator) dispatch(op string, fn func() error) {
	c.saves <- func() error {
		if err := fn(); err != nil {
			return errors.Store(op, err)
		}
		return nil
	}
}

func (c *Coordinator) notifyChange() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
