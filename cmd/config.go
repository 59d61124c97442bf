package cmd

// Config carries the process configuration resolved at startup.
type Config struct {
	HTTPPort      string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	SeedDatabase  bool
}

// Store driver names accepted in StoreDriver.
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)
