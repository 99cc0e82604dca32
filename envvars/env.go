package envvars

import (
	"log"
	"os"
)

const (
	ProjectID     = "GCP_PROJECT_ID"
	ImageBucket   = "IMAGE_BUCKET"
	YouTubeAPIKey = "YOUTUBE_API_KEY"
	Environment   = "ENVIRONMENT"
)

const (
	ProductionEnv = "production"
	DevEnv        = "dev"
)

type Env struct {
	ProjectID     string
	ImageBucket   string
	YouTubeAPIKey string
	Environment   string
}

func GetEvn() Env {
	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatalf("%s required", ProjectID)
	}
	bucket, ok := os.LookupEnv(ImageBucket)
	if !ok {
		log.Fatalf("%s required", ImageBucket)
	}
	youtubeKey, ok := os.LookupEnv(YouTubeAPIKey)
	if !ok {
		log.Fatalf("%s required", YouTubeAPIKey)
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	return Env{
		ProjectID:     projectID,
		ImageBucket:   bucket,
		YouTubeAPIKey: youtubeKey,
		Environment:   environment,
	}
}

func IsProd(e Env) bool {
	return e.Environment == ProductionEnv
}

func IsDev(e Env) bool {
	return e.Environment == DevEnv
}
