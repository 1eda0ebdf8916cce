package main

import (
	"context"
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/config"
	"github.com/sunbird-energy/sunbird/internal/database"
	"github.com/sunbird-energy/sunbird/internal/domain"
	"github.com/sunbird-energy/sunbird/internal/repository"
)

type inverterReading struct {
	DeviceID      string    `json:"device_id"`
	Timestamp     time.Time `json:"timestamp"`
	GenerationKWh float64   `json:"generation_kwh"`
	GridKWh       float64   `json:"grid_kwh"`
	SolarUsedKWh  float64   `json:"solar_used_kwh"`
	FeedInKWh     float64   `json:"feed_in_kwh"`
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	repos := repository.New(db)

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		var r inverterReading
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Error().Err(err).Str("topic", msg.Topic()).Msg("bad payload")
			return
		}
		rd := &domain.Reading{
			DeviceID:      r.DeviceID,
			Timestamp:     r.Timestamp,
			GenerationKWh: r.GenerationKWh,
			GridKWh:       r.GridKWh,
			SolarUsedKWh:  r.SolarUsedKWh,
			FeedInKWh:     r.FeedInKWh,
		}
		if err := repos.InsertReading(context.Background(), rd); err != nil {
			log.Error().Err(err).Msg("ingest failed")
		}
	}

	if token := client.Subscribe("solar/readings", 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Msg("ingestor running; Ctrl+C to stop")
	for {
		time.Sleep(10 * time.Second)
	}
}
