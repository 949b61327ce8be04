package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS    = ""          // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""          // MySQL will be used if this is set
	SQLITE_FILE    = "pagina.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"
	APP_NAMESPACE  = "pagina-fotos"   // tenant namespace applied to every collection query
	ADMIN_PASSWORD = "fotos2024"      // plaintext admin gate; NOT a security boundary
	AUTH_SECRET    = "dev-secret-key" // HS256 secret for token sign-in
	AUTH_TOKEN     = ""               // pre-supplied sign-in token, tried before anonymous
	DEBUG_MODE     = true
)

func init() {
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("APP_NAMESPACE", &APP_NAMESPACE)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("AUTH_SECRET", &AUTH_SECRET)
	readEnvString("AUTH_TOKEN", &AUTH_TOKEN)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
