package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

const minimalConfig = `
vessel:
  mmsi: 368323170
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
publish_intervals:
  GGA: 10s
`

func TestLoad_RequiresAddrForTCP(t *testing.T) {
	path := writeTempConfig(t, `
mqtt:
  enable: true
publish_intervals:
  GGA: 10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "nmea.addr is required when nmea.source is tcp")
}

func TestLoad_RequiresAnOutput(t *testing.T) {
	path := writeTempConfig(t, `
nmea:
  addr: "localhost:10110"
publish_intervals:
  GGA: 10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "at least one output (mqtt, kafka, repeat) must be enabled")
}

func TestLoad_RequiresPublishIntervals(t *testing.T) {
	path := writeTempConfig(t, `
vessel:
  mmsi: 368323170
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
`)
	_, err := Load(path)
	requireErrEq(t, err, "publish_intervals must name at least one sentence type")
}

func TestLoad_RequiresMMSIForMQTT(t *testing.T) {
	path := writeTempConfig(t, `
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
publish_intervals:
  GGA: 10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "vessel.mmsi is required when mqtt is enabled")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.NMEA.Source != "tcp" {
		t.Fatalf("source=%q want tcp", cfg.NMEA.Source)
	}
	if cfg.NMEA.DialTimeout != 2*time.Second {
		t.Fatalf("dial_timeout=%v", cfg.NMEA.DialTimeout)
	}
	if cfg.NMEA.ReconnectDelay != 5*time.Second {
		t.Fatalf("reconnect_delay=%v", cfg.NMEA.ReconnectDelay)
	}
	if cfg.NMEA.Baud != 4800 {
		t.Fatalf("baud=%d", cfg.NMEA.Baud)
	}
	if cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Fatalf("broker=%q", cfg.MQTT.Broker)
	}
	if cfg.MQTT.ClientID != "nmea-bridge" {
		t.Fatalf("client_id=%q", cfg.MQTT.ClientID)
	}
	if cfg.MQTT.TopicPrefix != "nmea" {
		t.Fatalf("topic_prefix=%q", cfg.MQTT.TopicPrefix)
	}
}

func TestLoad_QoSClamped(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, `
vessel:
  mmsi: 368323170
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
  qos: 7
publish_intervals:
  GGA: 10s
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MQTT.QoS != 2 {
		t.Fatalf("qos=%d want 2", cfg.MQTT.QoS)
	}
}

func TestLoad_IntervalKeysUppercased(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, `
vessel:
  mmsi: 368323170
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
publish_intervals:
  gga: 10s
  rmc: 1m
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Publish["GGA"] != 10*time.Second {
		t.Fatalf("GGA interval=%v", cfg.Publish["GGA"])
	}
	if cfg.Publish["RMC"] != time.Minute {
		t.Fatalf("RMC interval=%v", cfg.Publish["RMC"])
	}
}

func TestLoad_NegativeIntervalRejected(t *testing.T) {
	path := writeTempConfig(t, `
vessel:
  mmsi: 368323170
nmea:
  addr: "localhost:10110"
mqtt:
  enable: true
publish_intervals:
  GGA: -10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "publish_intervals.GGA must not be negative")
}

func TestLoad_BadSource(t *testing.T) {
	path := writeTempConfig(t, `
nmea:
  source: carrier-pigeon
  addr: "localhost:10110"
mqtt:
  enable: true
publish_intervals:
  GGA: 10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "nmea.source must be tcp or serial")
}

func TestLoad_KafkaRequiresBrokers(t *testing.T) {
	path := writeTempConfig(t, `
nmea:
  addr: "localhost:10110"
kafka:
  enable: true
publish_intervals:
  GGA: 10s
`)
	_, err := Load(path)
	requireErrEq(t, err, "kafka.brokers is required when kafka is enabled")
}
