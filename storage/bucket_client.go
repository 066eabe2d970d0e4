/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"iter"
	"net/http"
)

var accessErrorCodes = map[string]bool{
	"AccessDenied":          true,
	"AllAccessDisabled":     true,
	"ExpiredToken":          true,
	"InvalidAccessKeyId":    true,
	"InvalidToken":          true,
	"SignatureDoesNotMatch": true,
}

// BucketClient lists the contents of S3 buckets using a set of session Credentials.  A BucketClient can only be
// created from session credentials, and never outlives them: once the credentials expire every listing fails
// with shared.ErrAccessDenied.
type BucketClient struct {
	Client s3Api
	Logger shared.Logger
	creds  *credentials.Credentials
}

// NewBucketClient returns a BucketClient using a copy of the provided aws.Config, with any credentials provider
// in cfg replaced by creds.
func NewBucketClient(cfg aws.Config, creds *credentials.Credentials) (*BucketClient, error) {
	if !creds.HasKeys() {
		return nil, shared.Wrap(shared.ErrAccessDenied, credentials.ErrInvalidCredentials)
	}

	c := cfg.Copy()
	c.Credentials = creds

	// a failed page is surfaced to the caller, never retried
	return &BucketClient{
		Client: s3.NewFromConfig(c, func(o *s3.Options) {
			o.RetryMaxAttempts = 1
		}),
		Logger: new(shared.DefaultLogger),
		creds:  creds,
	}, nil
}

// ListObjects returns the objects in bucket as a lazy sequence, in the order returned by the service.  Pages are
// requested as the sequence is consumed, and the first error ends it.  The sequence may only be ranged over once,
// a second pass yields ErrSequenceConsumed.  Call ListObjects again to repeat the listing.
func (c *BucketClient) ListObjects(ctx context.Context, bucket BucketReference, opts ...ListOption) iter.Seq2[ObjectSummary, error] {
	var consumed bool

	return func(yield func(ObjectSummary, error) bool) {
		if consumed {
			yield(ObjectSummary{}, ErrSequenceConsumed)
			return
		}
		consumed = true

		if err := bucket.Validate(); err != nil {
			yield(ObjectSummary{}, err)
			return
		}

		in := &s3.ListObjectsV2Input{Bucket: aws.String(bucket.String())}
		for _, o := range opts {
			o(in)
		}

		logger := shared.LoggerOrDefault(c.Logger)
		p := s3.NewListObjectsV2Paginator(c.Client, in)

		for page := 1; p.HasMorePages(); page++ {
			if c.creds.Expired() {
				yield(ObjectSummary{}, shared.Wrap(shared.ErrAccessDenied, credentials.ErrExpiredCredentials))
				return
			}

			logger.Debugf("requesting page %d of bucket %s", page, bucket)
			out, err := p.NextPage(ctx)
			if err != nil {
				yield(ObjectSummary{}, classifyS3Error(ctx, err))
				return
			}

			for _, obj := range out.Contents {
				if !yield(toSummary(obj), nil) {
					return
				}
			}
		}
	}
}

// Collect consumes the sequence, returning the objects in order.  The objects received before an error are
// returned with it.
func Collect(seq iter.Seq2[ObjectSummary, error]) ([]ObjectSummary, error) {
	out := make([]ObjectSummary, 0)
	for o, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, nil
}

func toSummary(o types.Object) ObjectSummary {
	return ObjectSummary{
		Key:          aws.ToString(o.Key),
		Size:         aws.ToInt64(o.Size),
		LastModified: aws.ToTime(o.LastModified),
	}
}

func classifyS3Error(ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}

	// failures retrieving the credentials are already classified
	if shared.Classify(err) != nil {
		return err
	}

	code := shared.ApiErrorCode(err)
	switch {
	case accessErrorCodes[code]:
		return shared.Wrap(shared.ErrAccessDenied, err)
	case code == "NoSuchBucket":
		return shared.Wrap(shared.ErrNotFound, err)
	}

	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		switch re.HTTPStatusCode() {
		case http.StatusForbidden:
			return shared.Wrap(shared.ErrAccessDenied, err)
		case http.StatusNotFound:
			return shared.Wrap(shared.ErrNotFound, err)
		}
	}
	return shared.Wrap(shared.ErrTransientService, err)
}
