package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/TomerBass/DogNames/internal/consts"

	"github.com/spf13/viper"
)

var (
	// appConfig holds a *Config; readers get lock-free snapshots.
	appConfig atomic.Value
	configMu  sync.Mutex // serializes writes
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Upload     UploadConfig     `mapstructure:"upload"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// URL is a full connection string (postgres:// or mysql://). Empty
	// means the embedded SQLite file named by Filename.
	URL      string `mapstructure:"url"`
	Filename string `mapstructure:"filename"`
}

type UploadConfig struct {
	Path         string `mapstructure:"path"`
	URLPrefix    string `mapstructure:"url_prefix"`
	CacheControl string `mapstructure:"cache_control"`
}

type CloudinaryConfig struct {
	// URL being non-empty is what switches image storage from local disk
	// to Cloudinary. There is no separate on/off flag.
	URL    string `mapstructure:"url"`
	Folder string `mapstructure:"folder"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// UseCloudinary reports whether the remote image sink is configured.
func (c Config) UseCloudinary() bool {
	return strings.TrimSpace(c.Cloudinary.URL) != ""
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	log.Println("✅ config loaded")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	configDir := strings.TrimSpace(customConfigDir)
	if configDir == "" {
		configDir = "config"
	}

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.url", "")
	v.SetDefault("database.filename", "dogs.db")
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("cloudinary.url", "")
	v.SetDefault("cloudinary.folder", consts.CloudinaryFolder)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  no config file found, using env vars and defaults")
		} else {
			log.Fatalf("❌ failed to read config file: %v", err)
		}
	}

	// Environment override: DOGFINDER_SERVER_PORT overrides server.port, etc.
	v.SetEnvPrefix("DOGFINDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Hosting platforms inject these two without any prefix.
	_ = v.BindEnv("database.url", "DOGFINDER_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("cloudinary.url", "DOGFINDER_CLOUDINARY_URL", "CLOUDINARY_URL")

	return v
}

func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ failed to parse config: %v", err)
		return
	}

	appConfig.Store(&tempConfig)
}
