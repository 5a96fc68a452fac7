package cmd

// Config carries all runtime settings, loaded from the environment by the
// entrypoint.
type Config struct {
	HTTPPort   string
	JWTSecret  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MarketplaceBaseURL string

	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaNotificationTopic string

	ViewRefreshSpec string
}
