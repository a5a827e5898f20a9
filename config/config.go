package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	HTTP        HTTPConfig    `yaml:"http"`
	CORS        CORSConfig    `yaml:"cors"`
	GeminiModel string        `yaml:"gemini_model"`
	Uploads     UploadsConfig `yaml:"uploads"`

	// Secrets and endpoints come from the environment, not the yaml file.
	MongoURI      string `yaml:"-"`
	MongoDBName   string `yaml:"-"`
	GeminiApiKey  string `yaml:"-"`
	CloudinaryURL string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type HTTPConfig struct {
	Port string `yaml:"port"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// UploadsConfig bounds multipart bodies on the find and community-post routes.
type UploadsConfig struct {
	MaxMultipartMB int64 `yaml:"max_multipart_mb"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.MongoURI = os.Getenv("MONGODB_URI")
	c.MongoDBName = os.Getenv("MONGODB_DB_NAME")
	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.CloudinaryURL = os.Getenv("CLOUDINARY_URL")

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
