package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/111KartoFan111/kurultai-project/docs"
	v1 "github.com/111KartoFan111/kurultai-project/internal/api/handler/v1"
	"github.com/111KartoFan111/kurultai-project/internal/api/middleware"
	"github.com/111KartoFan111/kurultai-project/internal/config"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
	"github.com/111KartoFan111/kurultai-project/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	gameHandler := s.initGameHandler(db)
	eventHandler := s.initEventHandler(db)
	teamHandler := s.initTeamHandler(db)
	s.MountHandlers(authHandler, userHandler, gameHandler, eventHandler, teamHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initGameHandler(db *gorm.DB) *v1.GameHandler {
	repo := repository.NewGameRepository(dao.NewGameDAO(db))
	leagueRepo := repository.NewLeagueRepository(dao.NewLeagueDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewGameService(repo, leagueRepo, userRepo)
	handler := v1.NewGameHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewEventService(repo, userRepo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initTeamHandler(db *gorm.DB) *v1.TeamHandler {
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	leagueRepo := repository.NewLeagueRepository(dao.NewLeagueDAO(db))
	svc := service.NewTeamService(teamRepo, userRepo)
	leagueSvc := service.NewLeagueService(leagueRepo)
	handler := v1.NewTeamHandler(svc, leagueSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	gameHandler *v1.GameHandler,
	eventHandler *v1.EventHandler,
	teamHandler *v1.TeamHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.PUT("/users/:userID/profile", userHandler.HandleUpdateProfile)
		users.GET("/users", middleware.RequireAdmin(), userHandler.HandleListUsers)
		users.DELETE("/users/:userID", middleware.RequireAdmin(), userHandler.HandleDeleteUser)
		users.PUT("/users/:userID/rank", middleware.RequireAdmin(), userHandler.HandleChangeRank)
	}

	games := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		games.GET("/games/upcoming", gameHandler.HandleUpcomingGames)
		games.POST("/games", middleware.RequireAdmin(), gameHandler.HandleCreateGame)
		games.PATCH("/games/:gameID", middleware.RequireAdmin(), gameHandler.HandleUpdateGame)
		games.DELETE("/games/:gameID", middleware.RequireAdmin(), gameHandler.HandleDeleteGame)
	}

	events := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		events.GET("/events", eventHandler.HandleListEvents)
		events.POST("/events", middleware.RequireAdmin(), eventHandler.HandleCreateEvent)
		events.POST("/events/:eventID/stop", middleware.RequireAdmin(), eventHandler.HandleStopRegistration)
		events.DELETE("/events/:eventID", middleware.RequireAdmin(), eventHandler.HandleDeleteEvent)
		events.POST("/events/:eventID/registrations", eventHandler.HandleRegister)
	}

	teams := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		teams.GET("/teams", teamHandler.HandleListTeams)
		teams.POST("/teams", teamHandler.HandleCreateTeam)
		teams.GET("/leagues", teamHandler.HandleListLeagues)
		teams.POST("/leagues", middleware.RequireAdmin(), teamHandler.HandleCreateLeague)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Kurultai API"
	docs.SwaggerInfo.Description = "Debate tournament management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
