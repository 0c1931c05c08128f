package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration from the given directory.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	out.configFs = afero.NewBasePathFs(fs, path)

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration, SSH host key and log
// directory into path, then loads the result. Existing files are kept.
func Initialize(fs afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	base := afero.NewBasePathFs(fs, path)

	if exists, _ := afero.Exists(base, ConfigurationName); !exists {
		logger.Printf("Creating %s", ConfigurationName)
		if err := afero.WriteFile(base, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	if err := base.MkdirAll(LogsDirName, 0700); err != nil {
		return nil, err
	}

	if exists, _ := afero.Exists(base, PrivateKeyName); !exists {
		logger.Printf("Generating SSH host key %s", PrivateKeyName)
		keyPem, err := generateHostKey()
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(base, PrivateKeyName, keyPem, 0600); err != nil {
			return nil, err
		}
	}

	return Load(fs, path)
}

// generateHostKey creates an ed25519 private key in PKCS#8 PEM form.
func generateHostKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
