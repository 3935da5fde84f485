package sink

import (
	"context"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte

	// MMSI identifies the vessel in the topic path:
	// <prefix>/<mmsi>/<TYPE>.
	MMSI int
}

// MQTTSink publishes each record to <prefix>/<mmsi>/<TYPE>. The paho
// client reconnects on its own; publishes during an outage fail and are
// dropped, which is acceptable for periodic instrument data.
type MQTTSink struct {
	cfg    MQTTConfig
	client mqtt.Client
}

func NewMQTT(cfg MQTTConfig) (*MQTTSink, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetOrderMatters(false).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.OnConnect = func(c mqtt.Client) {
		log.Printf("mqtt connected broker=%s", cfg.Broker)
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Printf("mqtt connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return &MQTTSink{cfg: cfg, client: client}, nil
}

func (s *MQTTSink) Publish(ctx context.Context, sentenceType string, payload []byte) error {
	topic := Topic(s.cfg.TopicPrefix, s.cfg.MMSI, sentenceType)
	token := s.client.Publish(topic, s.cfg.QoS, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, token.Error())
	}
	return nil
}

func (s *MQTTSink) Close() error {
	s.client.Disconnect(250)
	return nil
}

// Topic builds the publish topic for one sentence type.
func Topic(prefix string, mmsi int, sentenceType string) string {
	return fmt.Sprintf("%s/%d/%s", prefix, mmsi, sentenceType)
}
