package main

import (
	"encoding/json"
	"math"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/config"
)

type reading struct {
	DeviceID      string    `json:"device_id"`
	Timestamp     time.Time `json:"timestamp"`
	GenerationKWh float64   `json:"generation_kwh"`
	GridKWh       float64   `json:"grid_kwh"`
	SolarUsedKWh  float64   `json:"solar_used_kwh"`
	FeedInKWh     float64   `json:"feed_in_kwh"`
}

// generationAt approximates a solar production curve peaking at midday.
func generationAt(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	if hour < 6 || hour > 18 {
		return 0
	}
	return 4 * math.Sin((hour-6)/12*math.Pi)
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		now := time.Now()
		generation := generationAt(now) * (0.8 + rand.Float64()*0.4)
		usage := 1.5 + rand.Float64()
		solarUsed := math.Min(generation, usage)
		r := reading{
			DeviceID:      "inverter-001",
			Timestamp:     now,
			GenerationKWh: generation,
			GridKWh:       usage - solarUsed,
			SolarUsedKWh:  solarUsed,
			FeedInKWh:     generation - solarUsed,
		}
		payload, _ := json.Marshal(r)
		token := client.Publish("solar/readings", 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
