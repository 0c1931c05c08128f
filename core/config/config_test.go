package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	// Will panic() on an invalid embed because that should never happen
	// at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())

	assert.Equal(t, "/bin", cfg.BinDir)
	assert.NotEmpty(t, cfg.Prompt.Name)
	assert.NotEmpty(t, cfg.Programs)
}

func TestValidate(t *testing.T) {
	t.Run("relative bin_dir", func(t *testing.T) {
		cfg := Default()
		cfg.BinDir = "bin"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad ssh_port", func(t *testing.T) {
		cfg := Default()
		cfg.SSHPort = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("duplicate programs", func(t *testing.T) {
		cfg := Default()
		cfg.Programs = []Program{{Name: "hello"}, {Name: "hello"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing prompt", func(t *testing.T) {
		cfg := Default()
		cfg.Prompt.Name = ""
		assert.Error(t, cfg.Validate())
	})
}
