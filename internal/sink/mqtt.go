package sink

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTPublisher adapts a paho client to the router's publish channel.
// Delivery is QoS 0 fire-and-forget: the publish token is never waited on,
// matching the best-effort contract.
type MQTTPublisher struct {
	client mqtt.Client
}

func NewMQTTPublisher(broker, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		return nil, token.Error()
	}
	return &MQTTPublisher{client: client}, nil
}

func (p *MQTTPublisher) Publish(topic, payload string) {
	if !p.client.IsConnectionOpen() {
		return
	}
	p.client.Publish(topic, 0, false, payload)
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
