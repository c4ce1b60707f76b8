package services

import (
	"fmt"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
)

type eventDeps struct {
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

func InitEventDeps(rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{rt: rt, ps: ps}
}

// EmitProgressEvent pushes the recomputed roll-up for the chain above
// an action to the user's open websockets. Safe to call anywhere.
func EmitProgressEvent(userID uint, actionID uint) {
	if _events.rt == nil {
		return
	}

	var action models.Action
	if err := config.DB.First(&action, actionID).Error; err != nil {
		return
	}
	var sub models.SubGoal
	if err := config.DB.First(&sub, action.SubGoalID).Error; err != nil {
		return
	}
	var goal models.Goal
	if err := config.DB.First(&goal, sub.GoalID).Error; err != nil {
		return
	}

	_events.rt.BroadcastEvent(userID, map[string]any{
		"kind": "progress.updated",
		"goal": map[string]any{"id": goal.ID, "progress": goal.Progress, "status": goal.Status},
		"sub_goal": map[string]any{"id": sub.ID, "progress": sub.Progress},
		"action":   map[string]any{"id": action.ID, "progress": action.Progress},
	})
}

// EmitReminderEvent announces a delivered reminder over websocket and
// push. The email channel is the scheduler's own concern.
func EmitReminderEvent(userID uint, reminder *models.TaskReminder, taskTitle string) {
	if _events.rt != nil {
		_events.rt.BroadcastEvent(userID, map[string]any{
			"kind":     "reminder.sent",
			"reminder": reminder,
			"task":     taskTitle,
		})
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, "Task Reminder", taskTitle, map[string]string{
			"taskId":     fmt.Sprintf("%d", reminder.TaskID),
			"reminderId": fmt.Sprintf("%d", reminder.ID),
		})
	}
}
