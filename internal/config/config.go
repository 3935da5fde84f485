package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Vessel  VesselConfig             `yaml:"vessel"`
	NMEA    NMEAConfig               `yaml:"nmea"`
	MQTT    MQTTConfig               `yaml:"mqtt"`
	Kafka   KafkaConfig              `yaml:"kafka"`
	Repeat  RepeatConfig             `yaml:"repeat"`
	Publish map[string]time.Duration `yaml:"publish_intervals"`
}

type VesselConfig struct {
	MMSI int `yaml:"mmsi"`
}

type NMEAConfig struct {
	// Source selects how sentences are ingested: "tcp" (network feed)
	// or "serial". When empty, defaults to "tcp".
	Source string `yaml:"source"`

	// Addr is host:port of the feed when Source=="tcp".
	Addr string `yaml:"addr"`

	// Device is the serial device path for Source=="serial"; empty
	// auto-detects.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	DialTimeout    time.Duration `yaml:"dial_timeout"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
}

type MQTTConfig struct {
	Enable      bool   `yaml:"enable"`
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         int    `yaml:"qos"`
}

type KafkaConfig struct {
	Enable  bool     `yaml:"enable"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type RepeatConfig struct {
	UDPDest string `yaml:"udp_dest"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	src := strings.ToLower(strings.TrimSpace(cfg.NMEA.Source))
	if src == "" {
		src = "tcp"
	}
	if src != "tcp" && src != "serial" {
		return Config{}, fmt.Errorf("nmea.source must be tcp or serial")
	}
	cfg.NMEA.Source = src

	if src == "tcp" && cfg.NMEA.Addr == "" {
		return Config{}, fmt.Errorf("nmea.addr is required when nmea.source is tcp")
	}
	if cfg.NMEA.DialTimeout <= 0 {
		cfg.NMEA.DialTimeout = 2 * time.Second
	}
	if cfg.NMEA.ReconnectDelay <= 0 {
		cfg.NMEA.ReconnectDelay = 5 * time.Second
	}
	if cfg.NMEA.Baud == 0 {
		cfg.NMEA.Baud = 4800
	}

	if !cfg.MQTT.Enable && !cfg.Kafka.Enable && cfg.Repeat.UDPDest == "" {
		return Config{}, fmt.Errorf("at least one output (mqtt, kafka, repeat) must be enabled")
	}

	if cfg.MQTT.Enable {
		if cfg.MQTT.Broker == "" {
			cfg.MQTT.Broker = "tcp://localhost:1883"
		}
		if cfg.MQTT.ClientID == "" {
			cfg.MQTT.ClientID = "nmea-bridge"
		}
		if cfg.MQTT.TopicPrefix == "" {
			cfg.MQTT.TopicPrefix = "nmea"
		}
		if cfg.MQTT.QoS < 0 {
			cfg.MQTT.QoS = 0
		}
		if cfg.MQTT.QoS > 2 {
			cfg.MQTT.QoS = 2
		}
		if cfg.Vessel.MMSI <= 0 {
			return Config{}, fmt.Errorf("vessel.mmsi is required when mqtt is enabled")
		}
	}

	if cfg.Kafka.Enable {
		if len(cfg.Kafka.Brokers) == 0 {
			return Config{}, fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			cfg.Kafka.Topic = "nmea-sentences"
		}
	}

	if len(cfg.Publish) == 0 {
		return Config{}, fmt.Errorf("publish_intervals must name at least one sentence type")
	}
	intervals := make(map[string]time.Duration, len(cfg.Publish))
	for sentenceType, interval := range cfg.Publish {
		if interval < 0 {
			return Config{}, fmt.Errorf("publish_intervals.%s must not be negative", sentenceType)
		}
		intervals[strings.ToUpper(strings.TrimSpace(sentenceType))] = interval
	}
	cfg.Publish = intervals

	return cfg, nil
}
