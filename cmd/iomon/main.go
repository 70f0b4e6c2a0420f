package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/ioexpander/pkg/l1/mqtt"
	"github.com/robotalks/ioexpander/pkg/l1/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/robo/"
)

func init() {
	if val := os.Getenv("IOX_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	q.Sub(mqtt.DeviceType+"/#", func(topic string, payload []byte) {
		switch {
		case strings.HasSuffix(topic, "/"+mqtt.TopicStatus):
			status, err := msgs.DecodeLedStatus(payload)
			if err != nil {
				log.Printf("%s: bad status: %v", topic, err)
				return
			}
			log.Printf("%s: %s", topic, status.String())
		case strings.HasSuffix(topic, "/"+mqtt.TopicMeta):
			meta, err := msgs.DecodeDeviceMeta(payload)
			if err != nil {
				log.Printf("%s: bad meta: %v", topic, err)
				return
			}
			log.Printf("%s: %s", topic, meta.String())
		default:
			log.Printf("%s: %q", topic, payload)
		}
	})
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	<-(chan struct{})(nil)
}
