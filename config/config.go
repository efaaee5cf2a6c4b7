package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Proximity estimation modes.
const (
	ProximityModeSimulated = "simulated"
	ProximityModeHaversine = "haversine"
)

// Position source kinds.
const (
	PositionSourceSimulated = "simulated"
	PositionSourceMQTT      = "mqtt"
	PositionSourceHTTP      = "http"
)

// Alert player kinds.
const (
	AlertPlayerWAV  = "wav"
	AlertPlayerMQTT = "mqtt"
	AlertPlayerLog  = "log"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Wallet configuration for the tracked wallet and its demo contents
	Wallet *WalletConfig `json:"wallet" yaml:"wallet"`

	// Proximity configuration for the user/wallet distance estimation
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Geofence configuration for the lost detection
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Position configuration for the user position feed
	Position *PositionConfig `json:"position" yaml:"position"`

	// MQTT configuration shared by the position feed, telemetry feed and speaker player
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Assistant configuration for the conversational service
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	// Alert configuration for the voice alert
	Alert *AlertConfig `json:"alert" yaml:"alert"`

	// Persistence configuration for the SQLite store
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	// Map configuration for the map view and tile passthrough
	Map *MapConfig `json:"map" yaml:"map"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for support phone QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// MDNS configuration for LAN discovery
	MDNS *MDNSConfig `json:"mdns" yaml:"mdns"`

	// Notifier configuration for the push worker
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WalletConfig defines the initial wallet state
type WalletConfig struct {
	SeedDemoItems    bool    `json:"seedDemoItems" yaml:"seedDemoItems"`
	InitialLatitude  float64 `json:"initialLatitude" yaml:"initialLatitude"`
	InitialLongitude float64 `json:"initialLongitude" yaml:"initialLongitude"`
	InitialBattery   int     `json:"initialBattery" yaml:"initialBattery"`
}

// ProximityConfig selects how the user/wallet distance is computed
type ProximityConfig struct {
	// Mode is "simulated" (random value in [0,2) meters) or "haversine"
	Mode string `json:"mode" yaml:"mode"`
}

// GeofenceConfig defines geofence defaults
type GeofenceConfig struct {
	Enabled          bool    `json:"enabled" yaml:"enabled"`
	DefaultRadius    float64 `json:"defaultRadius" yaml:"defaultRadius"`
	MaxRadius        float64 `json:"maxRadius" yaml:"maxRadius"`
	AntitheftEnabled bool    `json:"antitheftEnabled" yaml:"antitheftEnabled"`
}

// PositionConfig defines the user position feed
type PositionConfig struct {
	// Source is "simulated", "mqtt" or "http"
	Source       string        `json:"source" yaml:"source"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	HighAccuracy bool          `json:"highAccuracy" yaml:"highAccuracy"`
}

// MQTTConfig defines the MQTT broker connection and topics
type MQTTConfig struct {
	Broker         string        `json:"broker" yaml:"broker"`
	ClientID       string        `json:"clientId" yaml:"clientId"`
	Username       string        `json:"username" yaml:"username"`
	Password       string        `json:"password" yaml:"password"`
	QoS            byte          `json:"qos" yaml:"qos"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	PositionTopic  string        `json:"positionTopic" yaml:"positionTopic"`
	TelemetryTopic string        `json:"telemetryTopic" yaml:"telemetryTopic"`
	SpeakerTopic   string        `json:"speakerTopic" yaml:"speakerTopic"`
}

// AssistantConfig defines the conversational service
type AssistantConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Model   string        `json:"model" yaml:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AlertConfig defines the voice alert
type AlertConfig struct {
	Phrase      string        `json:"phrase" yaml:"phrase"`
	SpeechModel string        `json:"speechModel" yaml:"speechModel"`
	Voice       string        `json:"voice" yaml:"voice"`
	SampleRate  int           `json:"sampleRate" yaml:"sampleRate"`
	Cooldown    time.Duration `json:"cooldown" yaml:"cooldown"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	// Player is "wav", "mqtt" or "log"
	Player    string `json:"player" yaml:"player"`
	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

// PersistenceConfig defines the SQLite store
type PersistenceConfig struct {
	DatabasePath    string `json:"databasePath" yaml:"databasePath"`
	SnapshotEnabled bool   `json:"snapshotEnabled" yaml:"snapshotEnabled"`
	RestoreOnStart  bool   `json:"restoreOnStart" yaml:"restoreOnStart"`
}

// MapConfig defines the map view
type MapConfig struct {
	Zoom            int            `json:"zoom" yaml:"zoom"`
	TileURLTemplate string         `json:"tileUrlTemplate" yaml:"tileUrlTemplate"`
	PMTiles         *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`
}

// PMTilesConfig defines the PMTiles archive served by the tile passthrough
type PMTilesConfig struct {
	// Enable the local tile passthrough
	Enabled bool `json:"enabled" yaml:"enabled"`

	// PMTiles source URL (local file path, HTTP URL, or GCS URL)
	Source string `json:"source" yaml:"source"`

	// Number of directories cached by the PMTiles server
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotifierConfig defines the worker that turns wallet events into push notifications
type NotifierConfig struct {
	Port int `json:"port" yaml:"port"`
}

// MDNSConfig defines the zeroconf advertisement
type MDNSConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Instance string `json:"instance" yaml:"instance"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML keys, e.g. ASSISTANT_APIKEY -> assistant.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills every optional section that was left out of the YAML file.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}

	if cfg.Wallet == nil {
		// Via Stefano Franscini 32, Bellinzona
		cfg.Wallet = &WalletConfig{
			SeedDemoItems:    true,
			InitialLatitude:  46.1966,
			InitialLongitude: 9.0250,
			InitialBattery:   92,
		}
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.Mode == "" {
		cfg.Proximity.Mode = ProximityModeSimulated
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{Enabled: true}
	}
	if cfg.Geofence.DefaultRadius <= 0 {
		cfg.Geofence.DefaultRadius = 50
	}
	if cfg.Geofence.MaxRadius <= 0 {
		cfg.Geofence.MaxRadius = 5000
	}

	if cfg.Position == nil {
		cfg.Position = &PositionConfig{HighAccuracy: true}
	}
	if cfg.Position.Source == "" {
		cfg.Position.Source = PositionSourceSimulated
	}
	if cfg.Position.Interval <= 0 {
		cfg.Position.Interval = 5 * time.Second
	}

	if cfg.MQTT != nil {
		if cfg.MQTT.ClientID == "" {
			cfg.MQTT.ClientID = "safewallet-server"
		}
		if cfg.MQTT.ConnectTimeout <= 0 {
			cfg.MQTT.ConnectTimeout = 10 * time.Second
		}
		if cfg.MQTT.PositionTopic == "" {
			cfg.MQTT.PositionTopic = "safewallet/user/position"
		}
		if cfg.MQTT.TelemetryTopic == "" {
			cfg.MQTT.TelemetryTopic = "safewallet/wallet/telemetry"
		}
		if cfg.MQTT.SpeakerTopic == "" {
			cfg.MQTT.SpeakerTopic = "safewallet/wallet/speaker"
		}
	}

	if cfg.Assistant == nil {
		cfg.Assistant = &AssistantConfig{}
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = "gemini-2.5-flash"
	}
	if cfg.Assistant.Timeout <= 0 {
		cfg.Assistant.Timeout = 30 * time.Second
	}

	if cfg.Alert == nil {
		cfg.Alert = &AlertConfig{}
	}
	if cfg.Alert.Phrase == "" {
		cfg.Alert.Phrase = "SafeWallet è qui. Sicurezza attiva."
	}
	if cfg.Alert.SpeechModel == "" {
		cfg.Alert.SpeechModel = "gemini-2.5-flash-preview-tts"
	}
	if cfg.Alert.Voice == "" {
		cfg.Alert.Voice = "Kore"
	}
	if cfg.Alert.SampleRate <= 0 {
		cfg.Alert.SampleRate = 24000
	}
	if cfg.Alert.Cooldown <= 0 {
		cfg.Alert.Cooldown = 3 * time.Second
	}
	if cfg.Alert.Timeout <= 0 {
		cfg.Alert.Timeout = 20 * time.Second
	}
	if cfg.Alert.Player == "" {
		cfg.Alert.Player = AlertPlayerWAV
	}
	if cfg.Alert.OutputDir == "" {
		cfg.Alert.OutputDir = "data/alerts"
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Persistence.DatabasePath == "" {
		cfg.Persistence.DatabasePath = "data/safewallet.db"
	}

	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	if cfg.Map.Zoom <= 0 {
		cfg.Map.Zoom = 17
	}
	if cfg.Map.TileURLTemplate == "" {
		cfg.Map.TileURLTemplate = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Port == 0 {
		cfg.Notifier.Port = 8081
	}
	if cfg.PubSub != nil && cfg.PubSub.LocalEndpoint == "" {
		cfg.PubSub.LocalEndpoint = "http://localhost:" + strconv.Itoa(cfg.Notifier.Port) + "/push"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
