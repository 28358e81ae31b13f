package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAdminUsername       = "GALLERY_ADMIN_USERNAME"
	EnvAdminPasswordDigest = "GALLERY_ADMIN_PASSWORD_DIGEST"
	EnvJWTSecret           = "GALLERY_JWT_SECRET"
	EnvCookieName          = "GALLERY_COOKIE_NAME"
	EnvOIDCClientID        = "GALLERY_OIDC_CLIENT_ID"
	EnvOIDCClientSecret    = "GALLERY_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL       = "GALLERY_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL     = "GALLERY_OIDC_REDIRECT_URL"
	EnvStorageHost         = "GALLERY_STORAGE_HOST"
	EnvStoragePort         = "GALLERY_STORAGE_PORT"
	EnvStorageUsername     = "GALLERY_STORAGE_USERNAME"
	EnvStoragePassword     = "GALLERY_STORAGE_PASSWORD"
	EnvStorageDatabase     = "GALLERY_STORAGE_DATABASE"
	EnvRedisUsername       = "GALLERY_REDIS_USERNAME"
	EnvRedisPassword       = "GALLERY_REDIS_PASSWORD"
	EnvS3Bucket            = "GALLERY_S3_BUCKET"
	EnvS3AccessKeyID       = "GALLERY_S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey   = "GALLERY_S3_SECRET_ACCESS_KEY"
	EnvGoogleAPIKey        = "GALLERY_GOOGLE_API_KEY"
)

func applyEnvironmentOverrides(config *Config) {
	if username := os.Getenv(EnvAdminUsername); username != "" {
		config.Auth.AdminUsername = username
	}

	if digest := os.Getenv(EnvAdminPasswordDigest); digest != "" {
		config.Auth.AdminPasswordDigest = digest
	}

	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if name := os.Getenv(EnvCookieName); name != "" {
		config.Auth.CookieName = name
	}

	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.RedirectURI = redirectURL
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		config.Storage.Database = database
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if bucket := os.Getenv(EnvS3Bucket); bucket != "" {
		if config.Uploads == nil {
			config.Uploads = &UploadsConfig{Enabled: true}
		}
		config.Uploads.Bucket = bucket
	}

	if accessKey := os.Getenv(EnvS3AccessKeyID); accessKey != "" {
		if config.Uploads == nil {
			config.Uploads = &UploadsConfig{Enabled: true}
		}
		config.Uploads.AccessKeyID = accessKey
	}

	if secretKey := os.Getenv(EnvS3SecretAccessKey); secretKey != "" {
		if config.Uploads == nil {
			config.Uploads = &UploadsConfig{Enabled: true}
		}
		config.Uploads.SecretAccessKey = secretKey
	}

	if apiKey := os.Getenv(EnvGoogleAPIKey); apiKey != "" {
		if config.Review == nil {
			config.Review = &ReviewConfig{Enabled: true}
		}
		config.Review.APIKey = apiKey
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateUploadsConfig()
	if err != nil {
		return err
	}

	err = config.validateReviewConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateAuthConfig() error {
	if c.Auth.Scheme == "" {
		c.Auth.Scheme = DefaultAuthConfig.Scheme
	}

	switch c.Auth.Scheme {
	case SchemeLocal:
		if c.Auth.JWTSecret == "" {
			c.Auth.JWTSecret = DefaultJWTSecret
		}
	case SchemeOIDC:
		if err := c.validateOIDCConfig(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid auth scheme: %s, options are '%s' or '%s'", c.Auth.Scheme, SchemeLocal, SchemeOIDC)
	}

	if c.Auth.AdminUsername == "" {
		c.Auth.AdminUsername = DefaultAuthConfig.AdminUsername
	}

	if c.Auth.CookieName == "" {
		c.Auth.CookieName = DefaultAuthConfig.CookieName
	}

	if c.Auth.TokenLifetime <= 0 {
		c.Auth.TokenLifetime = DefaultAuthConfig.TokenLifetime
	}

	if c.Auth.AdminGroup == "" {
		c.Auth.AdminGroup = DefaultAuthConfig.AdminGroup
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	if c.OIDC == nil {
		return fmt.Errorf("oidc config is required when auth.scheme is '%s'", SchemeOIDC)
	}

	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client id is required")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc client secret is required")
	}

	if err := validateURL(c.OIDC.IssuerURL, "oidc.issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OIDC.RedirectURI, "oidc.redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout <= 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Host == "" {
		c.Storage.Host = DefaultStorageConfig.Host
	}

	if c.Storage.Port == 0 {
		c.Storage.Port = DefaultStorageConfig.Port
	}

	if c.Storage.Port <= 0 || c.Storage.Port > 65535 {
		return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
	}

	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required")
	}

	if c.Storage.SSLMode == "" {
		c.Storage.SSLMode = DefaultStorageConfig.SSLMode
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be set to use redis for the artwork cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheConfig.TTL
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	return nil
}

func (c *Config) validateUploadsConfig() error {
	if c.Uploads == nil || !c.Uploads.Enabled {
		return nil
	}

	if c.Uploads.Bucket == "" {
		return fmt.Errorf("uploads.bucket is required when uploads are enabled")
	}

	if c.Uploads.Prefix == "" {
		c.Uploads.Prefix = DefaultUploadsConfig.Prefix
	}

	if c.Uploads.Region == "" {
		c.Uploads.Region = DefaultUploadsConfig.Region
	}

	if c.Uploads.MaxSizeBytes <= 0 {
		c.Uploads.MaxSizeBytes = DefaultUploadsConfig.MaxSizeBytes
	}

	if c.Uploads.Endpoint != "" {
		if err := validateURL(c.Uploads.Endpoint, "uploads.endpoint"); err != nil {
			return err
		}
	}

	if c.Uploads.PublicBaseURL != "" {
		if err := validateURL(c.Uploads.PublicBaseURL, "uploads.public_base_url"); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateReviewConfig() error {
	if c.Review == nil || !c.Review.Enabled {
		return nil
	}

	if c.Review.APIKey == "" {
		return fmt.Errorf("review.api_key is required when review generation is enabled")
	}

	if c.Review.Model == "" {
		c.Review.Model = DefaultReviewConfig.Model
	}

	if c.Review.Endpoint == "" {
		c.Review.Endpoint = DefaultReviewConfig.Endpoint
	}

	return validateURL(c.Review.Endpoint, "review.endpoint")
}

func validateURL(raw, field string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https", field)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid %s: missing host", field)
	}

	return nil
}
