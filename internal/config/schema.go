package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	OIDC     *OIDCConfig    `yaml:"oidc"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Sessions SessionConfig  `yaml:"sessions"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Redis    *RedisConfig   `yaml:"redis"`
	Uploads  *UploadsConfig `yaml:"uploads"`
	Review   *ReviewConfig  `yaml:"review"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// AuthConfig configures the authentication scheme. Exactly one scheme is
// active per deployment; handlers and the route guard never branch on it.
type AuthConfig struct {
	Scheme              string        `yaml:"scheme"`
	AdminUsername       string        `yaml:"admin_username"`
	AdminPasswordDigest string        `yaml:"admin_password_digest"`
	JWTSecret           string        `yaml:"jwt_secret"`
	CookieName          string        `yaml:"cookie_name"`
	TokenLifetime       time.Duration `yaml:"token_lifetime"`
	SecureCookies       bool          `yaml:"secure_cookies"`
	AdminGroup          string        `yaml:"admin_group"`
}

const (
	SchemeLocal = "local"
	SchemeOIDC  = "oidc"
)

// DefaultAdminPassword is only used when no digest is configured. The server
// hashes it at startup and logs a loud warning.
const DefaultAdminPassword = "adminpassword"

// DefaultJWTSecret mirrors the placeholder the service shipped with before
// configuration was mandatory. Deployments must override it.
const DefaultJWTSecret = "your-very-strong-jwt-secret-key-please-change-this-in-production-!!!!"

var DefaultAuthConfig = AuthConfig{
	Scheme:        SchemeLocal,
	AdminUsername: "admin",
	CookieName:    "auth_token",
	TokenLifetime: time.Hour,
	SecureCookies: true,
	AdminGroup:    "admin",
}

type OIDCConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email", "groups"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// SessionConfig configures the transient flow sessions used by the OIDC
// login flow (state, nonce, PKCE verifier). It is unrelated to the signed
// token cookie, which carries no server-side state.
type SessionConfig struct {
	Store        string        `yaml:"store"`
	Name         string        `yaml:"name"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	Name:         "flow_session",
	FixedTimeout: 15 * time.Minute,
	Secure:       true,
}

type StorageConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

var DefaultStorageConfig = StorageConfig{
	Host:    "localhost",
	Port:    5432,
	SSLMode: "disable",
}

type CacheConfig struct {
	Type string        `yaml:"type"`
	TTL  time.Duration `yaml:"ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
	TTL:  30 * time.Second,
}

type RedisConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SessionIndex int    `yaml:"session_index"`
	CacheIndex   int    `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}

type UploadsConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicBaseURL   string `yaml:"public_base_url"`
	UsePathStyle    bool   `yaml:"use_path_style"`
	MaxSizeBytes    int64  `yaml:"max_size_bytes"`
}

var DefaultUploadsConfig = UploadsConfig{
	Prefix:       "artworks/",
	Region:       "us-east-1",
	MaxSizeBytes: 10 << 20,
}

type ReviewConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

var DefaultReviewConfig = ReviewConfig{
	Model:    "gemini-2.5-flash",
	Endpoint: "https://generativelanguage.googleapis.com",
}
