//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: "postgres",
				DSN:  "host=localhost user=zeno password=zeno dbname=zeno port=5432",
				Name: "zeno",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: "sqlite",
				DSN:  "zeno.db",
			},
			expectedError: false,
		},
		{
			name: "sqlite allows empty DSN",
			settings: &DatabaseSettings{
				Type: "sqlite",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "zeno.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "postgres requires DSN",
			settings: &DatabaseSettings{
				Type: "postgres",
				Name: "zeno",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validate the struct
			err := tt.settings.Validate()

			if tt.expectedError {
				// Expect an error when validation fails
				require.Error(t, err)
			} else {
				// Expect no error when validation passes
				require.NoError(t, err)
			}
		})
	}
}
