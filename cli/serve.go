package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-planner/api"
	api_i "github.com/beka-birhanu/maze-planner/api/i"
	mazeapi "github.com/beka-birhanu/maze-planner/api/maze"
	"github.com/beka-birhanu/maze-planner/config"
	"github.com/beka-birhanu/maze-planner/infrastruture/cache"
	"github.com/beka-birhanu/maze-planner/infrastruture/repo"
	"github.com/beka-birhanu/maze-planner/service"
	"github.com/beka-birhanu/maze-planner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dependencies of the serving host
var (
	appLogger      *log.Logger
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	mazeService    i.MazePlanner
	mazeController api_i.Controller
	router         *api.Router
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve maze generation and step planning over REST",
		Long: `Start the HTTP host: mazes are generated on demand, persisted to MongoDB,
cached in Redis, and served together with next-step planning and road
sampling endpoints under /api/v1/mazes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)
	envs := config.Load()
	gin.SetMode(envs.GinMode)

	initMongo(ctx, envs)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx, envs)
	defer func() {
		_ = redisClient.Close()
	}()

	initMazeRepo(envs)
	initMazeCache(envs)
	initMazeService()
	initMazeController()
	initRouter(envs)

	// Run HTTP server
	return router.Run()
}

func initMongo(ctx context.Context, envs config.Config) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context, envs config.Config) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", envs.RedisHost, envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initMazeRepo(envs config.Config) {
	mazeRepo = repo.NewMazeRepo(mongoClient, envs.DBName, "mazes")
	appLogger.Println("Maze repository initialized")
}

func initMazeCache(envs config.Config) {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze cache: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Println("Maze cache initialized")
}

func initMazeService() {
	serviceLogger := log.New(os.Stdout, config.ColorCyan+"[MAZE-SERVICE] "+config.ColorReset, log.LstdFlags)

	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Repo:   mazeRepo,
		Cache:  mazeCache,
		Logger: serviceLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Println("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initRouter(envs config.Config) {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Println("Router initialized")
}
