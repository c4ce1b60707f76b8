package main

import (
	"log"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/routes"
	"github.com/satoshi256kbyte/goal-mandala-sub000/services"
	"github.com/satoshi256kbyte/goal-mandala-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
	}
	services.InitEventDeps(hub, push)

	scheduler := services.NewReminderScheduler(config.DB)
	scheduler.Start(time.Minute)
	defer scheduler.Stop()

	analytics := services.NewAnalyticsService(config.DB)

	r := routes.SetupRouter(hub, push, analytics)
	r.Run(":8080")
}
