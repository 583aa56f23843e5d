package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Port:            "8264",
		JWTSecret:       "secure-secret-at-least-32-chars-long",
		DBPassword:      "secure-password",
		Env:             "development",
		BlobDriver:      "local",
		UploadDir:       "/tmp/verdant-test/uploads",
		UploadMaxSizeMB: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validTestConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := validTestConfig()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := validTestConfig()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("unknown blob driver", func(t *testing.T) {
		c := validTestConfig()
		c.BlobDriver = "ftp"
		assert.Error(t, c.Validate())
	})

	t.Run("s3 driver requires bucket", func(t *testing.T) {
		c := validTestConfig()
		c.BlobDriver = "s3"
		assert.Error(t, c.Validate())

		c.S3Bucket = "verdant-media"
		assert.NoError(t, c.Validate())
	})

	t.Run("non-positive upload cap", func(t *testing.T) {
		c := validTestConfig()
		c.UploadMaxSizeMB = 0
		assert.Error(t, c.Validate())
	})
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "strong production config",
			mutate: func(c *Config) {},
		},
		{
			name:        "default jwt secret rejected",
			mutate:      func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			expectError: true,
		},
		{
			name:        "short jwt secret rejected",
			mutate:      func(c *Config) { c.JWTSecret = "short" },
			expectError: true,
		},
		{
			name:        "default db password rejected",
			mutate:      func(c *Config) { c.DBPassword = "password" },
			expectError: true,
		},
		{
			name:        "empty db password rejected",
			mutate:      func(c *Config) { c.DBPassword = "" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestConfig()
			c.Env = "production"
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
