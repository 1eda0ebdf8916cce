package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// AlertNotifier publishes operational alerts to an SNS topic.
type AlertNotifier struct {
	svc      *sns.Client
	topicArn string
}

func NewAlertNotifier(ctx context.Context, region, topicArn string) (*AlertNotifier, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &AlertNotifier{svc: sns.NewFromConfig(cfg), topicArn: topicArn}, nil
}

func (n *AlertNotifier) SendAlert(ctx context.Context, subject, message string) error {
	_, err := n.svc.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}
	return nil
}

// SendRecommendationAlert notifies operators about a high-priority usage
// recommendation for a site.
func (n *AlertNotifier) SendRecommendationAlert(ctx context.Context, siteID string, rec domain.Recommendation) error {
	subject := fmt.Sprintf("Sunbird: action recommended for site %s", siteID)
	message := fmt.Sprintf(
		"Usage Recommendation\n\n"+
			"Site: %s\n"+
			"Type: %s\n"+
			"Priority: %s\n"+
			"Potential saving: %.2f\n"+
			"Detail: %s\n"+
			"Time: %s\n",
		siteID,
		rec.Type,
		rec.Priority,
		rec.PotentialSaving,
		rec.Message,
		time.Now().Format(time.RFC3339),
	)
	return n.SendAlert(ctx, subject, message)
}

// SendSiteAlert forwards a stored site alert to the topic.
func (n *AlertNotifier) SendSiteAlert(ctx context.Context, alert domain.Alert) error {
	subject := fmt.Sprintf("Sunbird alert: site %s (%s)", alert.SiteID, alert.Severity)
	message := fmt.Sprintf(
		"Site Alert\n\n"+
			"Site: %s\n"+
			"Severity: %s\n"+
			"Message: %s\n"+
			"Raised: %s\n",
		alert.SiteID,
		alert.Severity,
		alert.Message,
		alert.CreatedAt.Format(time.RFC3339),
	)
	return n.SendAlert(ctx, subject, message)
}
