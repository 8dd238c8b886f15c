package interfaces

import "fieldjobs/internal/realtime"

// IEventPublisher fans a realtime event out to a job or user room.
// Publishing never blocks and never fails the triggering mutation.

type IEventPublisher interface {
	PublishToJob(jobID string, ev realtime.Event)
	PublishToUser(userID string, ev realtime.Event)
}
