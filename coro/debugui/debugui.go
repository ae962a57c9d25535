// Package debugui provides Dear ImGui panels for inspecting a coroutine
// scheduler while it runs.
package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/corotick/coro"
)

// TaskInspector renders the active tasks of a scheduler, with a plot of
// the active task count over recent ticks.
type TaskInspector struct {
	scheduler  *coro.Scheduler
	history    *History
	filterText string
}

// NewTaskInspector creates an inspector remembering historyFrames ticks.
func NewTaskInspector(scheduler *coro.Scheduler, historyFrames int) *TaskInspector {
	return &TaskInspector{
		scheduler: scheduler,
		history:   NewHistory(historyFrames),
	}
}

// Render draws the inspector window. Call it once per frame, after the
// scheduler ticked.
func (ti *TaskInspector) Render() {
	stats := ti.scheduler.GetStats()
	ti.history.Record(float32(stats.ActiveCount))

	if !imgui.BeginV("Coroutines", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Tick: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Active: %d", stats.ActiveCount))
	imgui.Text(fmt.Sprintf("Registered: %d  Completed: %d  Cancelled: %d",
		stats.Registered, stats.Completed, stats.Cancelled))
	imgui.Text(fmt.Sprintf("Steps: %d", stats.TotalSteps))

	imgui.Separator()
	imgui.Text("Active tasks per tick")
	samples := ti.history.Samples()
	if len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##active", &samples[0], int32(len(samples)))
	}

	imgui.Separator()
	imgui.InputTextWithHint("##filter", "Filter by name or state...", &ti.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ti.filterText = ""
	}

	rows := FilterTasks(stats.Tasks, ti.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("TaskTable", 7, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Wait")
		imgui.TableSetupColumn("Steps")
		imgui.TableSetupColumn("Age")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		for _, task := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", task.ID))
			imgui.TableNextColumn()
			imgui.Text(task.Name)
			imgui.TableNextColumn()
			imgui.Text(task.State.String())
			imgui.TableNextColumn()
			imgui.Text(task.Wait)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", task.Steps))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", task.Age))
			imgui.TableNextColumn()
			if imgui.Button(fmt.Sprintf("Cancel##%d", task.ID)) {
				ti.scheduler.Cancel(task.Handle)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// FilterTasks keeps the tasks whose name or state contains filter,
// ignoring case. An empty filter keeps everything.
func FilterTasks(tasks []coro.TaskStats, filter string) []coro.TaskStats {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return tasks
	}

	filtered := make([]coro.TaskStats, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Name), filter) ||
			strings.Contains(task.State.String(), filter) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
