package elasticsearch

import (
	"fmt"
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"
)

func CreateElasticsearchClient(config *config.Config) (*elasticsearch.Client, error) {
	return NewClient(config.ElasticsearchConfig.DBHost, http.DefaultTransport)
}

func NewClient(address string, transport http.RoundTripper) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{address},
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("connecting to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Warn().Str("component", "CreateElasticsearchClient").Str("response", res.String()).Msg("Elasticsearch info request failed")
	}

	return client, nil
}
