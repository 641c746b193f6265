package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
)

const productsIndex = "products"

type ElasticSearchProductRepositoryImpl struct {
	client *elasticsearch.Client
}

func CreateElasticSearchRepository(client *elasticsearch.Client) ProductSearchRepository {
	return &ElasticSearchProductRepositoryImpl{client: client}
}

func (r *ElasticSearchProductRepositoryImpl) IndexProduct(ctx context.Context, data dto.ProductResponse) (err error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}

	res, err := r.client.Index(productsIndex, bytes.NewReader(payload),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(data.ID),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IndexProduct").Msg("")
		return
	}
	defer res.Body.Close()

	return responseError(res)
}

func (r *ElasticSearchProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	res, err := r.client.Delete(productsIndex, id, r.client.Delete.WithContext(ctx))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}
	defer res.Body.Close()

	// already gone is fine
	if res.StatusCode == http.StatusNotFound {
		return nil
	}

	return responseError(res)
}

func (r *ElasticSearchProductRepositoryImpl) SearchProducts(ctx context.Context, query string, limit int) (data []dto.ProductResponse, err error) {
	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"productName^3", "productCode^2", "category", "productDescription"},
				"fuzziness": "AUTO",
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(productsIndex),
		r.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}
	defer res.Body.Close()

	if err = responseError(res); err != nil {
		return
	}

	var parsed dto.ElasticsearchResponse
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	data = make([]dto.ProductResponse, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		data = append(data, hit.Source)
	}

	return data, nil
}

func responseError(res *esapi.Response) error {
	if res.IsError() {
		return fmt.Errorf("elasticsearch returned %s", res.Status())
	}

	return nil
}
