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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"regexp"
	"time"
)

// ErrSequenceConsumed is returned when a listing sequence is ranged over more than once.
var ErrSequenceConsumed = errors.New("object listing already consumed")

// ErrInvalidBucketName is returned for a bucket name which does not follow the S3 naming rules.
var ErrInvalidBucketName = errors.New("invalid bucket name")

// legacy us-east-1 names allow uppercase and underscores, up to 255 characters
var bucketRe = regexp.MustCompile(`^[A-Za-z0-9._-]{1,255}$`)

type s3Api interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// BucketReference is the name of a bucket.
type BucketReference string

// Validate checks the bucket name for characters and lengths no S3 bucket can have, current or legacy.  A name
// which fails validation can never exist, so the returned error matches shared.ErrNotFound.  Names which pass may
// still be refused by the service with NoSuchBucket.
func (b BucketReference) Validate() error {
	s := string(b)
	if !bucketRe.MatchString(s) {
		return shared.Wrap(shared.ErrNotFound, fmt.Errorf("%w: '%s'", ErrInvalidBucketName, s))
	}
	return nil
}

// String returns the bucket name.
func (b BucketReference) String() string {
	return string(b)
}

// ObjectSummary describes a single object returned in a bucket listing.
type ObjectSummary struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ListOption customizes a single call to ListObjects.
type ListOption func(*s3.ListObjectsV2Input)

// WithPrefix limits the listing to keys beginning with prefix.
func WithPrefix(prefix string) ListOption {
	return func(in *s3.ListObjectsV2Input) {
		if len(prefix) > 0 {
			in.Prefix = &prefix
		}
	}
}

// WithPageSize sets the maximum number of keys requested per page.  Values less than 1 use the service default.
func WithPageSize(n int32) ListOption {
	return func(in *s3.ListObjectsV2Input) {
		if n > 0 {
			in.MaxKeys = &n
		}
	}
}
