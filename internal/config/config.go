package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Listen             string        `yaml:"listen"`               // host:port the API binds to
	SessionTTL         time.Duration `yaml:"session_ttl"`          // user_session cookie lifetime
	SecureCookies      bool          `yaml:"secure_cookies"`       // set Secure on session cookie
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"` //
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
	// Basic-auth credentials for the admin surface. The password is stored
	// as a bcrypt hash, never plaintext.
	AdminUser         string `yaml:"admin_user"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// SessionTTL returns the cookie lifetime, defaulting to the 50 weeks the
// board has always used when the config leaves it unset.
func (s *Config) SessionTTL() time.Duration {
	if s.Public.SessionTTL == 0 {
		return 50 * 7 * 24 * time.Hour
	}
	return s.Public.SessionTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
