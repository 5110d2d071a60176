package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	format    string
	unmarshal func([]byte, interface{}) error
}

var decoders = map[string]decoder{
	".toml": {format: "TOML", unmarshal: toml.Unmarshal},
	".yaml": {format: "YAML", unmarshal: yaml.Unmarshal},
	".yml":  {format: "YAML", unmarshal: yaml.Unmarshal},
	".json": {format: "JSON", unmarshal: json.Unmarshal},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Campos ausentes no arquivo ficam zerados para que defaults e flags os preencham.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported config file format %q", types.ErrInvalidConfig, ext)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory, not a file", types.ErrInvalidConfig, filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := dec.unmarshal(fileData, &cfg); err != nil {
		return nil, fmt.Errorf("%w: error parsing %s file %s: %v", types.ErrInvalidConfig, dec.format, filePath, err)
	}

	for i, region := range cfg.Regions {
		cfg.Regions[i] = strings.TrimSpace(region)
	}

	return &cfg, nil
}
