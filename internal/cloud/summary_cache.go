package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// SummaryCache memoises per-site energy totals for a fetch window in
// DynamoDB, so repeated SDG calculations do not hammer the vendor API.
type SummaryCache struct {
	svc   *dynamodb.Client
	table string
	ttl   time.Duration
}

func NewSummaryCache(ctx context.Context, region, table string) (*SummaryCache, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &SummaryCache{svc: dynamodb.NewFromConfig(cfg), table: table, ttl: time.Hour}, nil
}

type summaryItem struct {
	SiteID           string  `dynamodbav:"siteId"`
	Window           string  `dynamodbav:"window"`
	TotalGeneration  float64 `dynamodbav:"totalGeneration"`
	TotalConsumption float64 `dynamodbav:"totalConsumption"`
	CachedAt         int64   `dynamodbav:"cachedAt"`
}

func windowKey(start, end time.Time) string {
	return start.Format("2006-01-02") + "/" + end.Format("2006-01-02")
}

// Get returns cached totals for the site and window, if present and fresh.
func (c *SummaryCache) Get(ctx context.Context, siteID string, start, end time.Time) (domain.EnergyTotals, bool) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"siteId": siteID,
		"window": windowKey(start, end),
	})
	if err != nil {
		return domain.EnergyTotals{}, false
	}

	out, err := c.svc.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key:       key,
	})
	if err != nil || out.Item == nil {
		return domain.EnergyTotals{}, false
	}

	var item summaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.EnergyTotals{}, false
	}
	if time.Since(time.Unix(item.CachedAt, 0)) > c.ttl {
		return domain.EnergyTotals{}, false
	}
	return domain.EnergyTotals{
		TotalGeneration:  item.TotalGeneration,
		TotalConsumption: item.TotalConsumption,
	}, true
}

// Put stores totals for the site and window.
func (c *SummaryCache) Put(ctx context.Context, siteID string, start, end time.Time, totals domain.EnergyTotals) error {
	item, err := attributevalue.MarshalMap(summaryItem{
		SiteID:           siteID,
		Window:           windowKey(start, end),
		TotalGeneration:  totals.TotalGeneration,
		TotalConsumption: totals.TotalConsumption,
		CachedAt:         time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = c.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	return nil
}
