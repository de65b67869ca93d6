// Command repmazed runs the search service: an HTTP API in front of the
// quizmaster search strategies, backed by MongoDB for operator accounts
// and run history and Redis for the cross-instance run lock.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vinom-labs/repmaze/api"
	"github.com/vinom-labs/repmaze/api/i"
	"github.com/vinom-labs/repmaze/api/identity"
	"github.com/vinom-labs/repmaze/api/searchapi"
	"github.com/vinom-labs/repmaze/config"
	"github.com/vinom-labs/repmaze/identity"
	"github.com/vinom-labs/repmaze/infrastruture/repo"
	"github.com/vinom-labs/repmaze/infrastruture/runlock"
	"github.com/vinom-labs/repmaze/internal/logging"
	"github.com/vinom-labs/repmaze/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	appLogger    *logging.Logger
	mongoClient  *mongo.Client
	redisClient  *redis.Client
	operatorRepo *repo.OperatorRepo
	runRepo      *repo.RunRepo
	lock         *runlock.Lock
	tokenizer    *identity.JwtService
	authService  *service.AuthService
	jobManager   *service.JobManager
	router       *api.Router
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("connecting to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("connected to MongoDB")
}

func initRepos(client *mongo.Client) {
	operatorRepo = repo.NewOperatorRepo(client, config.Envs.DBName, "operators")
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Info("repositories initialized")
}

func initRedis() {
	redisClient = redis.NewClient(&redis.Options{Addr: config.Envs.RedisAddr})
	appLogger.Info("Redis client initialized")
}

func initRunLock(client *redis.Client) {
	lock = runlock.New(client)
	appLogger.Info("run lock initialized")
}

func initTokenizer() {
	tokenizer = identity.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT tokenizer initialized")
}

func initAuthService() {
	authService = service.NewAuthService(operatorRepo, tokenizer)
	appLogger.Info("auth service initialized")
}

func initJobManager() {
	jobManager = service.NewJobManager(runRepo, lock, appLogger)
	appLogger.Info("job manager initialized")
}

func initRouter() {
	identityController := identityapi.NewController(authService)
	searchController := searchapi.NewController(jobManager)

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []i.Controller{identityController, searchController},
		AuthorizationMiddleware: identityapi.Authorize(tokenizer),
	})
	appLogger.Info("router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = logging.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	initRepos(mongoClient)
	initRedis()
	defer redisClient.Close()

	initRunLock(redisClient)
	initTokenizer()
	initAuthService()
	initJobManager()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("starting server: %v", err))
		os.Exit(1)
	}
}
