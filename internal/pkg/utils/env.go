package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func lookupEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	var (
		parsed interface{}
		err    error
	)
	switch defaultValue.(type) {
	case string:
		return value
	case int:
		parsed, err = strconv.Atoi(value)
	case bool:
		parsed, err = strconv.ParseBool(value)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	default:
		return defaultValue
	}
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue).(int)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue).(bool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue).(float64)
}

// GetEnvStringSlice splits a comma separated variable, dropping empty items.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
