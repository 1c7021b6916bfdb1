// Package config loads the settings of the storage facade.
//
// Values come from the `default` struct tags, an optional config.yaml, a
// .env file and the environment. Environment keys are the upper-cased
// section and field joined by an underscore (STORAGE_BUCKET, LOG_LEVEL).
//
// # Sections
//
//   - Server: HTTP port and API key
//   - Storage: Endpoint, credentials, default bucket and public host name
//   - Log: Level and format
//   - Database: Optional journal database (mysql or sqlite)
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
