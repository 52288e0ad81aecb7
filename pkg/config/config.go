package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const defaultPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	path string
}

// New loads the env file once. Path is taken from CONFIG_PATH.
// Variables already present in the environment take precedence over the file,
// a missing file leaves the environment as is.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultPath
		}
		instance = &Config{path: path}
		err := godotenv.Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Println("env file not found, using process environment: " + path)
				return
			}
			log.Fatal("loading envs error: ", err)
		}
	})
	return instance
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetInt returns def when key is unset or not an integer
func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
