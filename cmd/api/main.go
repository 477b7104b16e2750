package main

import (
	"context"
	"net/http"

	"surveyquote-api/internal/config"
	"surveyquote-api/internal/geoclient"
	"surveyquote-api/internal/handler"
	"surveyquote-api/internal/mailapi"
	"surveyquote-api/internal/postcode"
	"surveyquote-api/internal/repository"
	"surveyquote-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	resolver := loadResolver(repo)

	geo := geoclient.New(config.PostcodesBaseURL, http.DefaultClient)
	mail := mailapi.New(config.EnquiryEndpoint, http.DefaultClient)

	distanceService := service.NewDistanceService(resolver, geo)
	quoteService := service.NewQuoteService(distanceService)
	enquiryService := service.NewEnquiryService(repo, mail, quoteService)

	distanceHandler := handler.NewDistanceHandler(distanceService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/distance", distanceHandler.Distance)
	r.GET("/outcodes", distanceHandler.Outcodes)
	r.GET("/areas", distanceHandler.Areas)
	r.GET("/surveys", quoteHandler.Surveys)
	r.POST("/quote", quoteHandler.Quote)
	r.POST("/enquiries", enquiryHandler.Submit)

	r.Run(config.ServerAddress)
}

// loadResolver builds the resolver from the database reference tables,
// falling back to the embedded copy when the tables are absent or empty.
func loadResolver(repo *repository.Repository) *postcode.Resolver {
	ctx := context.Background()

	records, err := repo.ListOutcodes(ctx)
	if err != nil || len(records) == 0 {
		log.Warn().Err(err).Msg("outcode table unavailable, using embedded reference data")
		return postcode.DefaultResolver()
	}

	areas, err := repo.ListAreas(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("service-area table unavailable, using embedded reference data")
		return postcode.DefaultResolver()
	}

	log.Info().Int("outcodes", len(records)).Int("areas", len(areas)).Msg("loaded outcode reference data")
	return postcode.NewResolver(postcode.HomeBase, records, areas)
}
