package main

import (
	"os"

	"github.com/Luismorlan/blogmux/media"
	"github.com/Luismorlan/blogmux/server"
	"github.com/Luismorlan/blogmux/server/middlewares"
	. "github.com/Luismorlan/blogmux/utils"
	"github.com/Luismorlan/blogmux/utils/dotenv"
	"github.com/Luismorlan/blogmux/utils/flag"
	. "github.com/Luismorlan/blogmux/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Log.Info("api server shutdown")
}

// newMediaStore picks S3 when a bucket is configured, local disk otherwise.
func newMediaStore() (media.Store, error) {
	if bucket := os.Getenv("MEDIA_S3_BUCKET"); bucket != "" {
		return media.NewS3Store(bucket, os.Getenv("MEDIA_URL_PREFIX"))
	}
	return media.NewLocalStore("media", "/media/")
}

func main() {
	defer cleanup()

	flag.Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	middlewares.Setup()
	StartTracer()
	StartProfiler()

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	DatabaseSetupAndMigration(db)

	mediaStore, err := newMediaStore()
	if err != nil {
		Log.Fatal("fail to set up media store: ", err)
	}

	readStatus, err := GetReadStatusStore()
	if err != nil {
		// The server is fully functional without redis, readers just
		// lose read tracking.
		Log.Warn("redis not available, read tracking disabled: ", err)
		readStatus = nil
	}

	s := server.New(db, mediaStore, readStatus)
	router := s.Router(gintrace.Middleware(flag.ServiceName))

	Log.Info("api server starts up")
	router.Run(":8080")
}
