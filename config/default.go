package config

// DefaultConfigYAML is the embedded baseline configuration. Every key
// can be overridden by an external config file or MENU_* env vars.
var DefaultConfigYAML = []byte(`server:
  port: ":3000"
  mode: "debug"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: ""
  dbname: "menucatalog"
  charset: "utf8mb4"

ai:
  enabled: false
  base_url: "https://api.openai.com/v1"
  api_key: ""
  model: "gpt-4o-mini"
  timeout_seconds: 30

ratelimit:
  enabled: true
  max_requests: 60
  window_seconds: 60
`)
