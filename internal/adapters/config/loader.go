// Package config provides the project file loader for cross.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the project file at path.
// A missing file yields the built-in registry and toolchain.
func (l *Loader) Load(path string) (*domain.Config, error) {
	// #nosec G304 -- path is the operator supplied project file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		readErr := zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to read "+path)
		return nil, zerr.With(readErr, "path", path)
	}

	var file Crossfile
	if err := decode(data, &file); err != nil {
		parseErr := zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "failed to parse "+path)
		return nil, zerr.With(parseErr, "path", path)
	}

	cfg, err := l.toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func decode(data []byte, out *Crossfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (l *Loader) toDomain(file *Crossfile) (*domain.Config, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		versionErr := zerr.Wrap(domain.ErrConfigParseFailed, "unsupported config version")
		return nil, zerr.With(versionErr, "version", file.Version)
	}

	cfg := domain.DefaultConfig()

	if len(file.Targets) > 0 {
		targets := make([]domain.Target, 0, len(file.Targets))
		for _, t := range file.Targets {
			targets = append(targets, domain.Target{Alias: domain.Alias(t.Alias), Triple: domain.Triple(t.Triple)})
		}
		reg, err := domain.NewRegistry(targets...)
		if err != nil {
			return nil, err
		}
		cfg.Registry = reg
	}

	override := domain.Toolchain{ModeEnv: file.ModeEnv}
	if dto := file.Toolchain; dto != nil {
		override.Compiler = dto.Compiler
		override.TargetFlag = dto.TargetFlag
		override.ReleaseFlags = dto.ReleaseFlags
		override.Installer = dto.Installer
		override.InstalledMarkers = dto.InstalledMarkers
		override.Clean = dto.Clean
		override.Docs = dto.Docs
		override.Version = dto.Version
	}
	cfg.Toolchain = cfg.Toolchain.Merge(override)

	if file.Version == "" && l.Logger != nil {
		l.Logger.Warn("config has no version, assuming version " + SupportedVersion)
	}

	return cfg, nil
}
