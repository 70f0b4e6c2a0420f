package env

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PortConfig configures a host serial port.
type PortConfig struct {
	Device      string        `yaml:"device"`
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// MQTTConfig configures the optional MQTT presence.
type MQTTConfig struct {
	// BrokerURL specifies the MQTT broker to use, empty to disable.
	// e.g. mqtt://host:port/topic-prefix
	BrokerURL string `yaml:"broker_url"`
	// ID identifies the device in topics.
	ID string `yaml:"id"`
}

// Config provides options to set up the expander.
type Config struct {
	USB  PortConfig `yaml:"usb"`
	UART PortConfig `yaml:"uart"`
	MQTT MQTTConfig `yaml:"mqtt"`

	// Interval is the pause between loop iterations.
	Interval time.Duration `yaml:"interval"`
}

var defaultConfig = Config{
	USB:      PortConfig{Baud: 115200},
	UART:     PortConfig{Baud: 115200},
	Interval: 100 * time.Microsecond,
}

func init() {
	if val := os.Getenv("IOX_USB_PORT"); val != "" {
		defaultConfig.USB.Device = val
	}
	if val := os.Getenv("IOX_UART_PORT"); val != "" {
		defaultConfig.UART.Device = val
	}
	if val := os.Getenv("IOX_MQTT_URL"); val != "" {
		defaultConfig.MQTT.BrokerURL = val
	}
	defaultConfig.MQTT.ID = MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	bindFlags(flag.CommandLine, &defaultConfig)
}

func bindFlags(fs *flag.FlagSet, conf *Config) {
	fs.StringVar(&conf.USB.Device, "usb", conf.USB.Device, "USB serial device path")
	fs.IntVar(&conf.USB.Baud, "usb-baud", conf.USB.Baud, "USB serial baud rate")
	fs.StringVar(&conf.UART.Device, "uart", conf.UART.Device, "UART device path")
	fs.IntVar(&conf.UART.Baud, "uart-baud", conf.UART.Baud, "UART baud rate")
	fs.StringVar(&conf.MQTT.BrokerURL, "mqtt", conf.MQTT.BrokerURL, "MQTT broker URL, empty to disable")
	fs.StringVar(&conf.MQTT.ID, "id", conf.MQTT.ID, "Device ID")
	fs.DurationVar(&conf.Interval, "interval", conf.Interval, "Pause between loop iterations")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile loads a YAML file into the default config.
// Flags given on the command line take precedence over the file.
func LoadFile(path string) error {
	return loadFile(flag.CommandLine, &defaultConfig, path)
}

func loadFile(fs *flag.FlagSet, conf *Config, path string) error {
	saved := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		saved[f.Name] = f.Value.String()
	})
	if err := conf.Load(path); err != nil {
		return err
	}
	for name, val := range saved {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes a YAML file over the config. Unknown keys are errors.
func (c *Config) Load(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if c.USB.Device == "" {
		return errors.New("usb: device required")
	}
	if c.UART.Device == "" {
		return errors.New("uart: device required")
	}
	if c.USB.Baud <= 0 || c.UART.Baud <= 0 {
		return errors.New("baud rate must be > 0")
	}
	if c.Interval < 0 {
		return errors.New("interval must be >= 0")
	}
	if c.MQTT.BrokerURL != "" && c.MQTT.ID == "" {
		return errors.New("mqtt: id required")
	}
	return nil
}
