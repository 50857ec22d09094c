// Package wasteapi fetches the household collection calendar from the
// council's waste API.
package wasteapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"binday-scheduler/internal/common/errors"
	commonhttp "binday-scheduler/internal/common/http"
	"binday-scheduler/internal/common/logger"
	"binday-scheduler/internal/models"
)

// DefaultCollectionCount is how many upcoming collections a run looks at.
const DefaultCollectionCount = 2

type address struct {
	ID          string `json:"id"`
	HouseNumber string `json:"houseNumber"`
}

type collection struct {
	Date       string   `json:"date"`
	RoundTypes []string `json:"roundTypes"`
}

type collectionSearchResponse struct {
	Collections []collection `json:"collections"`
}

type Client struct {
	baseURL string
	http    *commonhttp.Client
	log     logger.Logger
}

func NewClient(baseURL string, httpClient *commonhttp.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = commonhttp.NewClient(0)
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log.WithFields(map[string]interface{}{"component": "wasteapi"}),
	}
}

// LookupAddress resolves a postcode and house number to the API's address ID.
func (c *Client) LookupAddress(ctx context.Context, postcode, houseNumber string) (string, error) {
	searchURL := fmt.Sprintf("%s/address/search?postCode=%s", c.baseURL, url.QueryEscape(postcode))

	var addresses []address
	if err := c.http.GetJSON(ctx, searchURL, &addresses); err != nil {
		return "", errors.NewFetchError("address search failed", err)
	}

	if len(addresses) == 0 {
		return "", errors.NewFetchError(fmt.Sprintf("no addresses found for postcode %s", postcode), nil)
	}

	for _, a := range addresses {
		if a.HouseNumber == houseNumber {
			return a.ID, nil
		}
	}
	return "", errors.NewFetchError(fmt.Sprintf("no address matches house number %s", houseNumber), nil)
}

// FetchCollections returns the next count collections for an address, one
// event per round type.
func (c *Client) FetchCollections(ctx context.Context, addressID string, count int) ([]models.CollectionEvent, error) {
	if count <= 0 {
		count = DefaultCollectionCount
	}
	searchURL := fmt.Sprintf("%s/collection/search/%s?numberOfCollections=%d",
		c.baseURL, url.PathEscape(addressID), count)

	var resp collectionSearchResponse
	if err := c.http.GetJSON(ctx, searchURL, &resp); err != nil {
		return nil, errors.NewFetchError("collection search failed", err)
	}

	if len(resp.Collections) == 0 {
		return nil, errors.NewFetchError("no collections found", nil)
	}

	var events []models.CollectionEvent
	for _, col := range resp.Collections {
		occursAt, err := parseCollectionDate(col.Date)
		if err != nil {
			return nil, errors.NewFetchError(fmt.Sprintf("bad collection date '%s'", col.Date), err)
		}
		for _, roundType := range col.RoundTypes {
			event, err := models.NewCollectionEvent(occursAt, roundType, "")
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
	}

	c.log.Info("collections fetched", map[string]interface{}{
		"addressId": addressID,
		"events":    len(events),
	})
	return events, nil
}

// parseCollectionDate accepts RFC 3339 timestamps and bare dates. Timestamps
// without a zone are taken as UTC.
func parseCollectionDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
