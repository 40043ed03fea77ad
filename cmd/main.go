package main

import (
	"log"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/controllers"
	"github.com/mahi-manish/pill-time/routes"
	"github.com/mahi-manish/pill-time/services"
	"github.com/mahi-manish/pill-time/utils"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	mailer := utils.NewSESMailer()
	if !mailer.Configured() {
		log.Printf("SES mailer not configured; missed-dose alerts will be skipped")
	}

	alertSvc := services.NewAlertService(config.DB, mailer)
	alertCtl := controllers.NewAlertController(alertSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	r := routes.SetupRouter(alertCtl, rtCtl)
	r.Run(":8080")
}
