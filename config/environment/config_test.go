package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "STORE_DRIVER", "SQLITE_PATH", "MONGO_URI", "MONGO_DATABASE",
		"FIREBASE_CREDENTIALS_BASE64", "FIREBASE_PROJECT_ID", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "exercise.db", cfg.SQLitePath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://user:pw@localhost:27017")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "exercisetracker", cfg.Mongo.Database)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.NotContains(t, cfg.String(), "pw")
}

func TestLoad_DriverRequirements(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.ErrorContains(t, err, "MONGO_URI")

	t.Setenv("STORE_DRIVER", "firestore")
	_, err = Load()
	assert.ErrorContains(t, err, "FIREBASE_CREDENTIALS_BASE64")

	t.Setenv("FIREBASE_CREDENTIALS_BASE64", "e30=")
	_, err = Load()
	assert.ErrorContains(t, err, "FIREBASE_PROJECT_ID")

	t.Setenv("STORE_DRIVER", "postgres")
	_, err = Load()
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4444\nSQLITE_PATH=/tmp/x.db\n"), 0o600))
	LoadDotEnv(path)
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("SQLITE_PATH")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4444", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)

	// missing file is tolerated
	LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
}
