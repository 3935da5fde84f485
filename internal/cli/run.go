package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nmea-bridge/internal/bridge"
	"nmea-bridge/internal/config"
	"nmea-bridge/internal/gate"
	"nmea-bridge/internal/nmea"
	"nmea-bridge/internal/sink"
	"nmea-bridge/internal/source"
	"nmea-bridge/internal/udp"
)

// unsupportedTypes returns the configured sentence types that have no
// decoder, sorted for stable log output. Records of these types can
// never be published; worth a warning at startup.
func unsupportedTypes(intervals map[string]time.Duration) []string {
	var out []string
	for sentenceType := range intervals {
		if !nmea.Supported(sentenceType) {
			out = append(out, sentenceType)
		}
	}
	sort.Strings(out)
	return out
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read the instrument feed and publish decoded records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		return run(cfg)
	},
}

func run(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var sinks []sink.Sink
	if cfg.MQTT.Enable {
		mq, err := sink.NewMQTT(sink.MQTTConfig{
			Broker:      cfg.MQTT.Broker,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    cfg.MQTT.Password,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			QoS:         byte(cfg.MQTT.QoS),
			MMSI:        cfg.Vessel.MMSI,
		})
		if err != nil {
			return fmt.Errorf("mqtt init failed: %w", err)
		}
		defer mq.Close()
		sinks = append(sinks, mq)
	}
	if cfg.Kafka.Enable {
		kf, err := sink.NewKafka(sink.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			return fmt.Errorf("kafka init failed: %w", err)
		}
		defer kf.Close()
		sinks = append(sinks, kf)
	}

	opts := []bridge.Option{}
	if cfg.Repeat.UDPDest != "" {
		repeater, err := udp.NewRepeater(cfg.Repeat.UDPDest)
		if err != nil {
			return fmt.Errorf("udp repeater init failed: %w", err)
		}
		defer repeater.Close()
		opts = append(opts, bridge.WithRepeater(repeater))
		log.Printf("udp repeat dest=%s", cfg.Repeat.UDPDest)
	}

	b := bridge.New(gate.New(gate.Policy(cfg.Publish)), sinks, opts...)

	var client source.Client
	switch cfg.NMEA.Source {
	case "serial":
		serial, err := source.NewSerialClient(source.SerialConfig{
			Device: cfg.NMEA.Device,
			Baud:   cfg.NMEA.Baud,
		})
		if err != nil {
			return fmt.Errorf("serial init failed: %w", err)
		}
		client = serial
		log.Printf("nmea source=serial device=%s baud=%d", cfg.NMEA.Device, cfg.NMEA.Baud)
	default:
		tcp, err := source.NewTCPClient(source.TCPConfig{
			Addr:           cfg.NMEA.Addr,
			ReconnectDelay: cfg.NMEA.ReconnectDelay,
			DialTimeout:    cfg.NMEA.DialTimeout,
		})
		if err != nil {
			return fmt.Errorf("tcp init failed: %w", err)
		}
		client = tcp
		log.Printf("nmea source=tcp addr=%s", cfg.NMEA.Addr)
	}
	defer client.Close()

	if err := client.Start(ctx, func(line []byte) error {
		return b.HandleLine(ctx, line)
	}); err != nil {
		return fmt.Errorf("source start failed: %w", err)
	}

	for _, sentenceType := range unsupportedTypes(cfg.Publish) {
		log.Printf("publish_intervals names %s but no decoder exists for it", sentenceType)
	}
	log.Printf("nmea-bridge starting types=%d", len(cfg.Publish))

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("nmea-bridge stopping")
			snap := b.Snapshot()
			log.Printf("final lines=%d decoded=%d published=%d suppressed=%d failures=%d",
				snap.Lines, snap.Decoded, snap.Published, snap.Suppressed, snap.Failures)
			return nil
		case <-ticker.C:
			snap := b.Snapshot()
			log.Printf("stats lines=%d decoded=%d published=%d suppressed=%d failures=%d",
				snap.Lines, snap.Decoded, snap.Published, snap.Suppressed, snap.Failures)
		}
	}
}
