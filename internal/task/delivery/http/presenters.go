package http

import (
	"time"

	"github.com/nikhil-s1nha/productivity/internal/model"
	"github.com/nikhil-s1nha/productivity/internal/task"
)

// --- Request DTOs ---

type importReq struct {
	Text string `json:"text" binding:"required"`
}

func (r importReq) toInput() task.ImportInput {
	return task.ImportInput{RawText: r.Text}
}

// ---

type createReq struct {
	Title           string     `json:"title" binding:"required,min=1,max=255"`
	Note            string     `json:"note" binding:"max=2000"`
	DueDate         *time.Time `json:"dueDate"`
	ScheduledStart  *time.Time `json:"scheduledStart"`
	DurationMinutes *int       `json:"durationMinutes" binding:"omitempty,min=0"`
	Tags            []string   `json:"tags"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:           r.Title,
		Note:            r.Note,
		DueDate:         r.DueDate,
		ScheduledStart:  r.ScheduledStart,
		DurationMinutes: r.DurationMinutes,
		Tags:            r.Tags,
	}
}

// ---

type updateReq struct {
	ID              string     `json:"-"` // populated from URI param
	Title           string     `json:"title" binding:"required,min=1,max=255"`
	Note            string     `json:"note" binding:"max=2000"`
	DueDate         *time.Time `json:"dueDate"`
	ScheduledStart  *time.Time `json:"scheduledStart"`
	DurationMinutes *int       `json:"durationMinutes" binding:"omitempty,min=0"`
	IsCompleted     bool       `json:"isCompleted"`
	Tags            []string   `json:"tags"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		Task: model.TaskItem{
			ID:              r.ID,
			Title:           r.Title,
			Note:            r.Note,
			DueDate:         r.DueDate,
			ScheduledStart:  r.ScheduledStart,
			DurationMinutes: r.DurationMinutes,
			IsCompleted:     r.IsCompleted,
			Tags:            r.Tags,
		},
	}
}

// ---

type deleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (r deleteReq) toInput() task.DeleteTasksInput {
	return task.DeleteTasksInput{IDs: r.IDs}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Note            string     `json:"note"`
	CreatedAt       time.Time  `json:"createdAt"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	ScheduledStart  *time.Time `json:"scheduledStart,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	IsCompleted     bool       `json:"isCompleted"`
	Tags            []string   `json:"tags"`
}

func newTaskResp(item model.TaskItem) taskResp {
	return taskResp{
		ID:              item.ID,
		Title:           item.Title,
		Note:            item.Note,
		CreatedAt:       item.CreatedAt,
		DueDate:         item.DueDate,
		ScheduledStart:  item.ScheduledStart,
		DurationMinutes: item.DurationMinutes,
		IsCompleted:     item.IsCompleted,
		Tags:            item.Tags,
	}
}

func newTaskResps(items []model.TaskItem) []taskResp {
	out := make([]taskResp, len(items))
	for i, item := range items {
		out[i] = newTaskResp(item)
	}
	return out
}

type importResp struct {
	Tasks     []taskResp `json:"tasks"`
	TaskCount int        `json:"task_count"`
}

func (h *handler) newImportResp(out task.ImportOutput) importResp {
	return importResp{Tasks: newTaskResps(out.Tasks), TaskCount: out.TaskCount}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task    *taskResp `json:"task,omitempty"`
	Toggled bool      `json:"toggled"`
}

func (h *handler) newToggleResp(out task.ToggleTaskOutput) toggleResp {
	resp := toggleResp{Toggled: out.Toggled}
	if out.Toggled {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}

type deleteResp struct {
	Deleted int `json:"deleted"`
}

func (h *handler) newDeleteResp(out task.DeleteTasksOutput) deleteResp {
	return deleteResp{Deleted: out.Deleted}
}
