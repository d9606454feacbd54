package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/files"
	"github.com/faizmokh/mdorg/internal/timestamp"
)

const (
	fileName = ".mdorg"
	fileType = "yaml"
	envPath  = "MDORG_CONFIG_PATH"
)

// Options tunes where Load looks for settings.
type Options struct {
	// EnvFile is loaded into the process environment when present.
	// Defaults to ".env" in the working directory.
	EnvFile string
	Logger  *zap.Logger
}

// Store owns a private viper instance holding the merged settings.
type Store struct {
	v        *viper.Viper
	validate *validator.Validate
	logger   *zap.Logger
}

// Load reads defaults, the config file and MDORG_* environment variables.
// A missing config file is not an error.
func Load(opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
		logger.Debug("env file loaded", zap.String("path", envFile))
	}

	workspace, err := files.ResolveBasePath()
	if err != nil {
		return nil, fmt.Errorf("resolve workspace: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyWorkspaceDir, workspace)
	v.SetDefault(KeyExtractorPath, DefaultExtractorPath)
	v.SetDefault(KeyMaintainFilePath, "")
	v.SetDefault(KeyLocale, DefaultLocale)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyFileTags, []map[string]any{{"name": DefaultTag, "pattern": ""}})
	v.SetDefault(KeyCurrentTag, DefaultTag)

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.SetEnvPrefix("MDORG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(envPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(workspace)
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logger.Debug("no config file found, using defaults")
	} else {
		logger.Debug("config loaded", zap.String("path", v.ConfigFileUsed()))
	}

	validate := validator.New()
	if err := validate.RegisterValidation("locale", validateLocale); err != nil {
		return nil, err
	}

	return &Store{v: v, validate: validate, logger: logger}, nil
}

func validateLocale(fl validator.FieldLevel) bool {
	_, ok := timestamp.LookupWeekdays(fl.Field().String())
	return ok
}

// Config decodes and validates the current settings. Path settings have ~
// expanded.
func (s *Store) Config() (Config, error) {
	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	var err error
	if cfg.WorkspaceDir, err = files.ExpandPath(cfg.WorkspaceDir); err != nil {
		return Config{}, err
	}
	if cfg.MaintainFilePath, err = files.ExpandPath(cfg.MaintainFilePath); err != nil {
		return Config{}, err
	}
	if cfg.ExtractorPath, err = files.ExpandPath(cfg.ExtractorPath); err != nil {
		return Config{}, err
	}

	if err := s.validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Set overrides a key for the lifetime of the store, e.g. from a flag.
func (s *Store) Set(key string, value any) {
	s.v.Set(key, value)
}

// ConfigFile reports the file settings were read from, if any.
func (s *Store) ConfigFile() string {
	return s.v.ConfigFileUsed()
}

// CycleTag advances currentTag and persists it to the config file, creating
// one next to the first search path when none was read. Only keys already in
// the file and currentTag are written; defaults and environment values stay
// out of it.
func (s *Store) CycleTag() (string, error) {
	cfg, err := s.Config()
	if err != nil {
		return "", err
	}
	next := cfg.NextTag()
	s.v.Set(KeyCurrentTag, next)

	if err := s.persist(KeyCurrentTag, next); err != nil {
		return "", err
	}
	s.logger.Debug("tag changed", zap.String("from", cfg.CurrentTag), zap.String("to", next))
	return next, nil
}

// persist rewrites the config file through a fresh viper instance holding
// only the file's own settings plus key.
func (s *Store) persist(key string, value any) error {
	file := viper.New()

	path := s.v.ConfigFileUsed()
	if path != "" {
		file.SetConfigFile(path)
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		dir := os.Getenv(envPath)
		if dir == "" {
			home, err := homedir.Dir()
			if err != nil {
				return err
			}
			dir = home
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		path = filepath.Join(dir, fileName+"."+fileType)
		file.SetConfigType(fileType)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.v.SetConfigFile(path)
	return nil
}
