package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// ReportArchive stores generated SDG reports in S3 and hands out presigned
// download links.
type ReportArchive struct {
	svc    *s3.Client
	bucket string
}

func NewReportArchive(ctx context.Context, region, bucket string) (*ReportArchive, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &ReportArchive{svc: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// UploadReport archives the report as JSON and returns a presigned URL
// valid for one hour.
func (a *ReportArchive) UploadReport(ctx context.Context, report domain.SDGReport) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	key := fmt.Sprintf("sdg-reports/%s/%s.json", report.Impact.OrganizationID, report.ID)
	_, err = a.svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	presigner := s3.NewPresignClient(a.svc)
	presigned, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 1 * time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presigned.URL, nil
}

// ListReports lists archived report keys for an organization.
func (a *ReportArchive) ListReports(ctx context.Context, orgID string) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String("sdg-reports/" + orgID + "/"),
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(a.svc, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
