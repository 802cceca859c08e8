package s3

import (
	"context"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type v4Request = v4.PresignedHTTPRequest

type presignAdapter struct {
	client *s3.PresignClient
}

func (p presignAdapter) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4Request, error) {
	return p.client.PresignGetObject(ctx, params, optFns...)
}
