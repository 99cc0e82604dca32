package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"shadowWisper/api"
	"shadowWisper/clients/gcp"
	"shadowWisper/envvars"
	"shadowWisper/services/character"
	"shadowWisper/services/chat"
	"shadowWisper/services/quest"
	"shadowWisper/services/user"
	"shadowWisper/services/video"
)

const videoAPIBaseURL = "https://www.googleapis.com/youtube/v3"

func main() {
	env := envvars.GetEvn()
	ctx := context.Background()

	firestore := gcp.CreateFirestore(ctx, env.ProjectID)
	defer firestore.Close()

	uploader, err := gcp.NewUploader(ctx, env.ImageBucket)
	if err != nil {
		slog.With("error", err.Error()).Error("failed to create storage uploader")
		return
	}
	defer uploader.Close()

	characterService := character.NewService(firestore, uploader)
	questService := quest.NewService(firestore, uploader)
	chatService := chat.NewService(chat.NewFirestoreStore(firestore))
	userService := user.NewUserService(firestore)
	videoService := video.NewService(resty.New().SetBaseURL(videoAPIBaseURL), env.YouTubeAPIKey)

	server := api.NewServer(
		firestore,
		characterService,
		questService,
		chatService,
		userService,
		videoService,
	)

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	api.RegisterHandlers(r, server)

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:8080",
	}

	slog.Info("Starting HTTP server on port 8080")
	log.Fatal(s.ListenAndServe())
}
