package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ParseKeyValues parses "key=value" items into a map. Blank items are
// skipped; duplicate keys keep the last value.
func ParseKeyValues(items []string) (map[string]string, error) {
	out := make(map[string]string, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid key=value pair: %s", item)
		}
		out[key] = value
	}
	return out, nil
}

// ParseDecimals parses "symbol=decimals" items.
func ParseDecimals(items []string) (map[string]uint8, error) {
	pairs, err := ParseKeyValues(items)
	if err != nil {
		return nil, err
	}

	out := make(map[string]uint8, len(pairs))
	for symbol, raw := range pairs {
		value, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid decimals for %s: %s", symbol, raw)
		}
		out[symbol] = uint8(value)
	}
	return out, nil
}
