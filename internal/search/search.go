package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/dkrasnov/storefront/internal/models"
)

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Product, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}

	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return r.Hits.Total.Value, prods, nil
}

func IndexProduct(ctx context.Context, es *elasticsearch.Client, index string, p *models.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("index product: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithDocumentID(strconv.Itoa(p.ID)),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product: %s", res.Status())
	}
	return nil
}

func DeleteProduct(ctx context.Context, es *elasticsearch.Client, index string, id int) error {
	res, err := es.Delete(
		index,
		strconv.Itoa(id),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	defer res.Body.Close()
	// absent documents are fine, the goal is "not indexed"
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete product: %s", res.Status())
	}
	return nil
}
