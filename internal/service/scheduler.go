package service

import (
	"context"
	"log"

	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"github.com/go-co-op/gocron/v2"
)

func NewScheduler() gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	return scheduler
}

// ScheduleSessionCleanup removes expired server-side sessions nightly. Only
// relevant in store-backed session mode; harmless otherwise.
func ScheduleSessionCleanup(s gocron.Scheduler, users store.UserStore) {
	if _, err := s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			if err := users.DeleteExpiredAuthSessions(context.Background()); err != nil {
				log.Println("err deleting expired auth sessions:", err)
			}
		}),
	); err != nil {
		log.Fatal(err)
	}
}
