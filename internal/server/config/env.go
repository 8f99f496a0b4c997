package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dmitrijs2005/accountkeeper/internal/timex"
)

// Environment variable names understood by parseEnv.
const (
	EnvGRPCAddress        = "GRPC_ADDRESS"
	EnvMetricsAddress     = "METRICS_ADDRESS"
	EnvDatabaseDSN        = "DATABASE_DSN"
	EnvLogLevel           = "LOG_LEVEL"
	EnvAccessTokenSecret  = "ACCESS_TOKEN_SECRET"
	EnvRefreshTokenSecret = "REFRESH_TOKEN_SECRET"
	EnvAccessTokenExpiry  = "ACCESS_TOKEN_EXPIRY"
	EnvRefreshTokenExpiry = "REFRESH_TOKEN_EXPIRY"
	EnvS3RootUser         = "S3_ROOT_USER"
	EnvS3RootPassword     = "S3_ROOT_PASSWORD"
	EnvS3Bucket           = "S3_BUCKET"
	EnvS3Region           = "S3_REGION"
	EnvS3BaseEndpoint     = "S3_BASE_ENDPOINT"
	EnvImageURLExpiry     = "IMAGE_URL_EXPIRY"
	EnvImageMaxBytes      = "IMAGE_MAX_BYTES"
)

// dotEnvFile is loaded into the process environment when present. Variables
// that are already set win over the file.
var dotEnvFile = ".env"

// parseEnv overlays environment variables onto config. Malformed durations
// or sizes panic.
func parseEnv(config *Config) {
	if _, err := os.Stat(dotEnvFile); err == nil {
		if err := godotenv.Load(dotEnvFile); err != nil {
			panic(fmt.Errorf("load %s: %w", dotEnvFile, err))
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	strs := map[string]*string{
		EnvGRPCAddress:        &config.EndpointAddrGRPC,
		EnvMetricsAddress:     &config.MetricsAddr,
		EnvDatabaseDSN:        &config.DatabaseDSN,
		EnvLogLevel:           &config.LogLevel,
		EnvAccessTokenSecret:  &config.AccessTokenSecret,
		EnvRefreshTokenSecret: &config.RefreshTokenSecret,
		EnvS3RootUser:         &config.S3RootUser,
		EnvS3RootPassword:     &config.S3RootPassword,
		EnvS3Bucket:           &config.S3Bucket,
		EnvS3Region:           &config.S3Region,
		EnvS3BaseEndpoint:     &config.S3BaseEndpoint,
	}
	for key, dst := range strs {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	durations := map[string]*time.Duration{
		EnvAccessTokenExpiry:  &config.AccessTokenValidityDuration,
		EnvRefreshTokenExpiry: &config.RefreshTokenValidityDuration,
		EnvImageURLExpiry:     &config.ImageURLValidity,
	}
	for key, dst := range durations {
		_ = v.BindEnv(key)
		if !v.IsSet(key) {
			continue
		}
		d, err := timex.ParseDuration(v.GetString(key))
		if err != nil {
			panic(fmt.Errorf("%s: %w", key, err))
		}
		*dst = d
	}

	_ = v.BindEnv(EnvImageMaxBytes)
	if v.IsSet(EnvImageMaxBytes) {
		n, err := strconv.ParseInt(v.GetString(EnvImageMaxBytes), 10, 64)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvImageMaxBytes, err))
		}
		config.ImageMaxBytes = n
	}
}
