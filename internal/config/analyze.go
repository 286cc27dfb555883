package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AnalyzeConfig holds configuration for the analyze command. Signatures,
// Tokens, and Decimals carry raw "key=value" items layered over the built-in
// registry by the command.
type AnalyzeConfig struct {
	Input           string
	ReportOut       string
	JSONOut         string
	PGDSN           string
	TxRef           string
	Signatures      []string
	Tokens          []string
	Decimals        []string
	MaxTransferRows int
	LogLevel        string
}

// LoadAnalyze merges config file, environment variables, and flags into AnalyzeConfig.
func LoadAnalyze(cfgFile string, flags *pflag.FlagSet) (AnalyzeConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("max-transfer-rows", 15)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return AnalyzeConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return AnalyzeConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return AnalyzeConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := AnalyzeConfig{
		Input:           v.GetString("in"),
		ReportOut:       v.GetString("report"),
		JSONOut:         v.GetString("json"),
		PGDSN:           v.GetString("pg-dsn"),
		TxRef:           v.GetString("tx"),
		Signatures:      getStringSlice(v, "signature"),
		Tokens:          getStringSlice(v, "token"),
		Decimals:        getStringSlice(v, "decimals"),
		MaxTransferRows: v.GetInt("max-transfer-rows"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}
