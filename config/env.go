package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAPIBaseURL = "http://localhost:8080"
	defaultAppEnv     = "local"
	defaultLoginURL   = "/login.html"
	defaultAccountURL = "/account.html"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once, merging them over the defaults.
// Later sources win: defaults < app.json < .env.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL":       defaultAPIBaseURL,
		"APP_ENV":            defaultAppEnv,
		"LOGIN_URL":          defaultLoginURL,
		"ACCOUNT_URL":        defaultAccountURL,
		"ANALYTICS_ENABLED":  "true",
		"STORAGE_DISK":       "local",
		"STORAGE_LOCAL_ROOT": ".shopeasy",
		"STORAGE_URL":        "",
	}
}

// APIBaseURL is the storefront backend every flow talks to.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// LoginURL is where the user agent is sent after the session is cleared.
func LoginURL() string {
	_ = Load()
	return get("LOGIN_URL", defaultLoginURL)
}

func AccountURL() string {
	_ = Load()
	return get("ACCOUNT_URL", defaultAccountURL)
}

// AnalyticsEnabled gates the telemetry sink. Anything except "false"/"0" is on.
func AnalyticsEnabled() bool {
	_ = Load()
	v := strings.ToLower(get("ANALYTICS_ENABLED", "true"))
	return v != "false" && v != "0"
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", "local")
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", ".shopeasy")
}

func StorageURL() string {
	_ = Load()
	return get("STORAGE_URL", "")
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── Identity provider hand-off ───────────────────────────────────────────────
// Consumed by an external sign-in flow; the client itself never dials these.

func B2CTenant() string       { _ = Load(); return get("B2C_TENANT", "") }
func B2CClientID() string     { _ = Load(); return get("B2C_CLIENT_ID", "") }
func B2CSignInPolicy() string { _ = Load(); return get("B2C_SIGNIN_POLICY", "") }
func B2CSignUpPolicy() string { _ = Load(); return get("B2C_SIGNUP_POLICY", "") }
func B2CRedirectURI() string  { _ = Load(); return get("B2C_REDIRECT_URI", "") }
func CognitoUserPool() string { _ = Load(); return get("COGNITO_USER_POOL_ID", "") }
func CognitoClientID() string { _ = Load(); return get("COGNITO_CLIENT_ID", "") }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
